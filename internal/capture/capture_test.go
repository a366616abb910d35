package capture

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/procpane/procpane/internal/proc"
)

func waitForLines(t *testing.T, buf *proc.Buffer, n int) []string {
	t.Helper()
	require.Eventually(t, func() bool { return buf.Len() >= n },
		2*time.Second, time.Millisecond)
	return buf.Lines()
}

func TestStreamAppendsLines(t *testing.T) {
	p := proc.NewProcess("Foo", proc.Settings{Streams: proc.StreamOutput})
	main := proc.NewBuffer()

	Start(p, Source{Out: strings.NewReader("hello\nworld\n")}, main)

	lines := waitForLines(t, p.Out, 2)
	require.Equal(t, []string{"hello", "world"}, lines)
	require.Zero(t, p.Err.Len())
	require.Zero(t, main.Len())
}

func TestStreamStripsANSIWhenConfigured(t *testing.T) {
	p := proc.NewProcess("Foo", proc.Settings{Streams: proc.StreamOutput, StripANSI: true})

	Start(p, Source{Out: strings.NewReader("\x1b[32mok\x1b[0m done\n")}, proc.NewBuffer())

	lines := waitForLines(t, p.Out, 1)
	require.Equal(t, []string{"ok done"}, lines)
}

func TestStreamKeepsANSIWhenDisabled(t *testing.T) {
	p := proc.NewProcess("Foo", proc.Settings{Streams: proc.StreamOutput})

	Start(p, Source{Out: strings.NewReader("\x1b[32mok\x1b[0m\n")}, proc.NewBuffer())

	lines := waitForLines(t, p.Out, 1)
	require.Equal(t, []string{"\x1b[32mok\x1b[0m"}, lines)
}

func TestBothStreamsCaptureIndependently(t *testing.T) {
	p := proc.NewProcess("Bar", proc.Settings{Streams: proc.StreamBoth})

	Start(p, Source{
		Out: strings.NewReader("out-1\nout-2\n"),
		Err: strings.NewReader("err-1\n"),
	}, proc.NewBuffer())

	require.Equal(t, []string{"out-1", "out-2"}, waitForLines(t, p.Out, 2))
	require.Equal(t, []string{"err-1"}, waitForLines(t, p.Err, 1))
}

func TestWaitExitAppendsNotice(t *testing.T) {
	p := proc.NewProcess("Foo", proc.Settings{Streams: proc.StreamOutput})
	main := proc.NewBuffer()

	Start(p, Source{
		Out:  strings.NewReader(""),
		Wait: func() error { return nil },
	}, main)

	lines := waitForLines(t, main, 1)
	require.Equal(t, "process 'Foo' exited: exit status 0", lines[0])
}

func TestWaitExitReportsError(t *testing.T) {
	p := proc.NewProcess("Foo", proc.Settings{Streams: proc.StreamOutput})
	main := proc.NewBuffer()

	Start(p, Source{
		Out:  strings.NewReader(""),
		Wait: func() error { return errors.New("exit status 2") },
	}, main)

	lines := waitForLines(t, main, 1)
	require.Equal(t, "process 'Foo' exited: exit status 2", lines[0])
}

func TestStreamResolvesPendingSearch(t *testing.T) {
	p := proc.NewProcess("Foo", proc.Settings{Streams: proc.StreamOutput})
	r, w := io.Pipe()

	Start(p, Source{Out: r}, proc.NewBuffer())

	done := make(chan string, 1)
	reg := proc.NewRegistry()
	_, err := reg.Register(p)
	require.NoError(t, err)
	go func() {
		line, _ := reg.BlockSearch("Foo", "llo")
		done <- line
	}()

	// Give the searcher a moment to install its request, then produce.
	time.Sleep(10 * time.Millisecond)
	_, err = w.Write([]byte("hey\nhello there\n"))
	require.NoError(t, err)

	select {
	case line := <-done:
		require.Equal(t, "hello there", line)
	case <-time.After(2 * time.Second):
		t.Fatal("search never resolved")
	}
	require.NoError(t, w.Close())
}

func TestStreamReadFailureSilencesStream(t *testing.T) {
	p := proc.NewProcess("Foo", proc.Settings{Streams: proc.StreamOutput})
	r, w := io.Pipe()

	Start(p, Source{Out: r}, proc.NewBuffer())

	_, err := w.Write([]byte("before\n"))
	require.NoError(t, err)
	waitForLines(t, p.Out, 1)

	// A read error ends the capture goroutine; the buffer keeps what it had.
	w.CloseWithError(errors.New("boom"))
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, []string{"before"}, p.Out.Lines())
}
