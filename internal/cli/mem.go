package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/sampler/internal/output"
	"github.com/wesleyorama2/sampler/internal/procfs"
)

var memCmd = &cobra.Command{
	Use:   "mem",
	Short: "Show a typed /proc/meminfo snapshot",
	Long: `Read /proc/meminfo and print the system memory accounting a run would
record as context. Useful for eyeballing headroom before a big locked
buffer is created.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := procfs.ReadMeminfo()
		if err != nil {
			return err
		}

		noColor, _ := cmd.Flags().GetBool("no-color")
		formatter := output.NewFormatter(noColor || !output.IsTerminal(os.Stdout))
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMeminfo(m))
		return nil
	},
}

func init() {
	memCmd.Flags().Bool("no-color", false, "disable colored output")
}
