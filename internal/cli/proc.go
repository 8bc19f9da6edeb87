package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/sampler/internal/output"
	"github.com/wesleyorama2/sampler/internal/procfs"
)

var procCmd = &cobra.Command{
	Use:   "proc <name-or-pid>",
	Short: "Show the /proc/[pid]/stat record of a process",
	Long: `Resolve a process by pid, or by name via pgrep, and print its kernel
stat record (CPU ticks, fault counts, memory sizes).

  sampler proc 1234
  sampler proc postgres`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pid, err := resolvePid(args[0])
		if err != nil {
			return err
		}

		stat, err := procfs.ReadPidStat(pid)
		if err != nil {
			return err
		}

		noColor, _ := cmd.Flags().GetBool("no-color")
		formatter := output.NewFormatter(noColor || !output.IsTerminal(os.Stdout))
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPidStat(stat))
		return nil
	},
}

func init() {
	procCmd.Flags().Bool("no-color", false, "disable colored output")
}

// resolvePid treats a numeric argument as a pid and anything else as a
// process name for pgrep.
func resolvePid(arg string) (int, error) {
	if pid, err := strconv.Atoi(arg); err == nil {
		return pid, nil
	}
	return procfs.Pgrep(arg)
}
