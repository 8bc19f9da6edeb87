package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/sampler/internal/config"
	"github.com/wesleyorama2/sampler/internal/output"
	"github.com/wesleyorama2/sampler/internal/runner"
)

var runCmd = &cobra.Command{
	Use:   "run [config-file]",
	Short: "Execute a measurement run",
	Long: `Run a measurement loop described by a YAML or JSON configuration and
print the resulting statistics.

With no config file, a default spin-workload run on the monotonic clock
is executed. Flags override whatever the config file says:

  sampler run
  sampler run run.yaml
  sampler run run.yaml --clock cycle --frequency 2400 -o report.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRun(cmd, args)
	},
}

func init() {
	runCmd.Flags().StringP("clock", "c", "", "clock source: cycle or monotonic")
	runCmd.Flags().Uint64P("frequency", "f", 0, "cycle counter frequency in MHz")
	runCmd.Flags().IntP("iterations", "n", 0, "number of measured iterations")
	runCmd.Flags().StringP("workload", "w", "", "workload: spin, alloc, syscall, or sleep")
	runCmd.Flags().StringP("output", "o", "", "write a JSON report to this path")
	runCmd.Flags().Bool("json", false, "print the report as JSON instead of text")
	runCmd.Flags().Bool("no-color", false, "disable colored output")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if len(args) == 1 {
		loaded, err := config.LoadConfig(args[0])
		if err != nil {
			return err
		}
		cfg = loaded
	}

	applyRunFlags(cmd, cfg)

	res, err := runner.Run(cfg)
	if err != nil {
		return err
	}
	report := output.BuildReport(res, cfg)

	if path := cfg.Output; path != "" {
		data, err := report.JSON()
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		data, err := report.JSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	formatter := output.NewFormatter(noColor || !output.IsTerminal(os.Stdout))
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(report))
	return nil
}

// applyRunFlags lets explicit flags override the config file.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config) {
	if v, _ := cmd.Flags().GetString("clock"); v != "" {
		cfg.Clock = v
	}
	if v, _ := cmd.Flags().GetUint64("frequency"); v != 0 {
		cfg.FrequencyMHz = v
	}
	if v, _ := cmd.Flags().GetInt("iterations"); v != 0 {
		cfg.Iterations = v
	}
	if v, _ := cmd.Flags().GetString("workload"); v != "" {
		cfg.Workload = v
	}
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		cfg.Output = v
	}
}
