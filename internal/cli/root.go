package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "sampler",
	Short:   "A measurement-collection substrate for benchmarking",
	Version: version,
	Long: `Sampler captures timing samples around a hot loop without perturbing it
and reduces them to statistics afterwards. Samples land in a pre-mapped,
memory-locked buffer; timestamps come from the CPU cycle counter or the
OS monotonic clock; reports carry exact order statistics alongside an
HDR-histogram cross-check.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print help
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

func init() {
	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(memCmd)
	RootCmd.AddCommand(procCmd)
	RootCmd.AddCommand(reportCmd)
}
