// Package capture runs the background goroutines that read child process
// streams into buffers and report child exits to the main log. The
// goroutines live for the rest of the program; nothing joins or cancels
// them, and a read failure silences that one stream for good.
package capture

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/procpane/procpane/internal/logging"
	"github.com/procpane/procpane/internal/proc"
)

var log = logging.ForComponent(logging.CompCapture)

// maxLineBytes bounds a single captured line. Children that emit longer
// unbroken runs get them split rather than aborting the capture.
const maxLineBytes = 1 << 20

// Source is an already-running process as the caller hands it over:
// whichever piped streams it wants shown, and a way to wait for exit.
// Spawning (and killing) the child stays with the caller.
type Source struct {
	// Out and Err are the piped stdout/stderr. A stream configured
	// visible in the process settings must be non-nil.
	Out io.Reader
	Err io.Reader

	// Wait blocks until the child exits. A nil error is reported as a
	// clean exit. Optional; without it no exit notice is produced.
	Wait func() error
}

// Start spawns the capture goroutines for p: one per visible stream and,
// when src.Wait is set, one that appends the exit notice to main. The
// caller has already validated that the configured streams are present.
func Start(p *proc.Process, src Source, main *proc.Buffer) {
	if p.Settings.Streams.HasOutput() {
		go stream(p, src.Out, p.Out, "stdout")
	}
	if p.Settings.Streams.HasError() {
		go stream(p, src.Err, p.Err, "stderr")
	}
	if src.Wait != nil {
		go waitExit(p.Name, src.Wait, main)
	}
}

// stream reads newline-delimited text until EOF, appending each line to buf
// and offering it to the pending search request. Lines are stripped of CSI
// sequences first when the process settings ask for it.
func stream(p *proc.Process, r io.Reader, buf *proc.Buffer, name string) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	for sc.Scan() {
		line := sc.Text()
		if p.Settings.StripANSI {
			line = StripANSI(line)
		}
		buf.Append(line)
		p.OfferLine(line)
	}

	if err := sc.Err(); err != nil {
		// No retry: the stream stays silent for the rest of the run.
		log.Error("stream_read_failed",
			slog.String("process", p.Name),
			slog.String("stream", name),
			slog.String("error", err.Error()))
		return
	}
	log.Debug("stream_eof",
		slog.String("process", p.Name),
		slog.String("stream", name))
}

// waitExit blocks on the child's exit and appends the formatted notice to
// the main log. The panes keep showing the captured buffers afterwards.
func waitExit(name string, wait func() error, main *proc.Buffer) {
	status := "exit status 0"
	if err := wait(); err != nil {
		status = err.Error()
	}
	main.Append(fmt.Sprintf("process '%s' exited: %s", name, status))
	log.Info("process_exited",
		slog.String("process", name),
		slog.String("status", status))
}
