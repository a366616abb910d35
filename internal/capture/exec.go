package capture

import (
	"fmt"
	"os/exec"
)

// StartCommand starts cmd with piped stdout and stderr and adapts it into a
// Source. The child is left entirely to the caller afterwards; the
// dashboard never kills it.
func StartCommand(cmd *exec.Cmd) (Source, error) {
	out, err := cmd.StdoutPipe()
	if err != nil {
		return Source{}, fmt.Errorf("stdout pipe: %w", err)
	}
	errPipe, err := cmd.StderrPipe()
	if err != nil {
		return Source{}, fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return Source{}, fmt.Errorf("starting %s: %w", cmd.Path, err)
	}
	return Source{Out: out, Err: errPipe, Wait: cmd.Wait}, nil
}
