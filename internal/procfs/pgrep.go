package procfs

import (
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ErrProcessNotFound is returned by Pgrep when no process matches the
// given name.
var ErrProcessNotFound = errors.New("procfs: process not found")

// Pgrep resolves a process name to a pid by shelling out to pgrep(1).
// When several processes match, the first (lowest-pid) match is
// returned. Lookup failures are recoverable and come back as errors;
// a missing match is ErrProcessNotFound.
func Pgrep(name string) (int, error) {
	out, err := exec.Command("pgrep", name).Output()
	if err != nil {
		var exitErr *exec.ExitError
		// pgrep exits 1 when nothing matched.
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return 0, fmt.Errorf("%w: %q", ErrProcessNotFound, name)
		}
		return 0, fmt.Errorf("procfs: pgrep %q: %w", name, err)
	}

	first, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	pid, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return 0, fmt.Errorf("procfs: pgrep %q: unparseable output %q: %w", name, first, err)
	}
	return pid, nil
}
