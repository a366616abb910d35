//go:build windows
// +build windows

package capture

import (
	"errors"
	"os/exec"
)

// StartCommandPTY is unavailable on Windows; use StartCommand.
func StartCommandPTY(cmd *exec.Cmd) (Source, error) {
	return Source{}, errors.New("pty capture is not supported on windows")
}
