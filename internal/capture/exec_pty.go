//go:build !windows
// +build !windows

package capture

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/creack/pty"
)

// StartCommandPTY starts cmd under a pseudo-terminal and adapts it into a
// Source. Children that detect a terminal keep emitting color and progress
// output, which pairs with StripANSI in the process settings. stdout and
// stderr share the pty, so the Source carries a single combined Out stream.
func StartCommandPTY(cmd *exec.Cmd) (Source, error) {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return Source{}, fmt.Errorf("starting %s under pty: %w", cmd.Path, err)
	}
	return Source{
		Out: ptyReader{ptmx},
		Wait: func() error {
			defer ptmx.Close()
			return cmd.Wait()
		},
	}, nil
}

// ptyReader maps the EIO a pty master returns once the child hangs up to a
// plain EOF, so the capture goroutine ends the same way a pipe does.
type ptyReader struct {
	f *os.File
}

func (r ptyReader) Read(p []byte) (int, error) {
	n, err := r.f.Read(p)
	if errors.Is(err, syscall.EIO) {
		return n, io.EOF
	}
	return n, err
}
