package sh

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

type DirectoryPath string
type ShellCommand string

// ExecuteShellCommand runs a command through `sh -c` in the given working
// directory and returns trimmed stdout. Stderr of a failed command is folded
// into the returned error so the journal records something actionable.
func ExecuteShellCommand(cwd DirectoryPath, command ShellCommand) (string, error) {
	cmd := exec.Command("sh", "-c", string(command))
	cmd.Dir = string(cwd)
	cmd.Env = os.Environ()
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
