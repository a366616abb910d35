// Package proc holds the dashboard's shared mutable state: the main log,
// one registered Process per captured child, and the ordered Registry the
// render loop and keyboard effects read through.
package proc

import "github.com/procpane/procpane/internal/shared"

// Buffer is an append-only ordered line buffer. Capture goroutines append,
// the render loop detaches copies, and it never shrinks for the lifetime of
// the program.
type Buffer struct {
	cell *shared.Cell[[]string]
}

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{cell: shared.NewCell[[]string](nil)}
}

// Append adds one line at the end.
func (b *Buffer) Append(line string) {
	b.cell.Write(func(lines *[]string) {
		*lines = append(*lines, line)
	})
}

// Len reports the number of buffered lines.
func (b *Buffer) Len() int {
	var n int
	b.cell.Read(func(lines []string) { n = len(lines) })
	return n
}

// Lines returns a detached copy of the buffered lines.
func (b *Buffer) Lines() []string {
	var out []string
	b.cell.Read(func(lines []string) {
		out = make([]string, len(lines))
		copy(out, lines)
	})
	return out
}

// Version reports the number of appends, used by the render loop's
// changed-since-last-tick check.
func (b *Buffer) Version() uint64 {
	return b.cell.Version()
}
