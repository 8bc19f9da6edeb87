package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/wesleyorama2/sampler/pkg/reportschema"
)

var reportCmd = &cobra.Command{
	Use:   "report <report.json>",
	Short: "Inspect a saved JSON report",
	Long: `Query or validate a report written by 'sampler run -o'.

Print a single value with a gjson path:

  sampler report report.json --query stats.percentiles.p99

Validate the file against the report schema:

  sampler report report.json --validate`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, args[0])
	},
}

func init() {
	reportCmd.Flags().StringP("query", "q", "", "gjson path to extract from the report")
	reportCmd.Flags().Bool("validate", false, "validate the report against the schema")
}

func runReport(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}

	if validate, _ := cmd.Flags().GetBool("validate"); validate {
		ok, errs := reportschema.Validate(data)
		if !ok {
			return fmt.Errorf("report is invalid: %s", errs.Error())
		}
		fmt.Fprintln(cmd.OutOrStdout(), "report is valid")
		return nil
	}

	query, _ := cmd.Flags().GetString("query")
	if query != "" {
		result := gjson.GetBytes(data, query)
		if !result.Exists() {
			return fmt.Errorf("no value at path %q", query)
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.String())
		return nil
	}

	// Default view: the headline numbers.
	name := gjson.GetBytes(data, "name")
	mean := gjson.GetBytes(data, "stats.meanNs")
	max := gjson.GetBytes(data, "stats.maxNs")
	iters := gjson.GetBytes(data, "iterations")
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s iterations, mean %sns, max %sns\n",
		name.String(), iters.String(), mean.String(), max.String())
	return nil
}
