package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/procpane/procpane/internal/proc"
)

// mainLogShare is the fraction of the screen width the main log keeps in
// the overview, matching the 30/70 split of the pane grid.
const mainLogShare = 0.3

// outShare is the vertical fraction the stdout pane keeps when a process
// shows both streams.
const outShare = 0.7

// procPanes is one process's column in the overview: either pane may be
// absent depending on the stream settings.
type procPanes struct {
	out *pane
	err *pane
}

// buildPanes detaches everything the frame needs from shared state: the
// main log pane plus one column per registered process, with focus digits
// assigned in registration order.
func buildPanes(reg *proc.Registry) (pane, []procPanes) {
	main := pane{
		kind:   paneMain,
		index:  proc.FocusMain,
		lines:  reg.Main.Lines(),
		scroll: reg.MainScroll.Detach(),
	}

	var cols []procPanes
	index := 0
	for _, p := range reg.Processes() {
		var col procPanes
		if p.Settings.Streams.HasOutput() {
			index++
			col.out = &pane{
				name:   p.Name,
				kind:   paneOut,
				index:  index,
				lines:  p.Out.Lines(),
				scroll: p.Scroll.Detach(),
			}
		}
		if p.Settings.Streams.HasError() {
			index++
			col.err = &pane{
				name:   p.Name,
				kind:   paneErr,
				index:  index,
				lines:  p.Err.Lines(),
				scroll: p.Scroll.Detach(),
			}
		}
		cols = append(cols, col)
	}
	return main, cols
}

// renderFrame draws the whole screen: the focused pane full-screen when a
// focus is set, otherwise the main log next to an even split of process
// columns.
func renderFrame(reg *proc.Registry, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	main, cols := buildPanes(reg)
	focus := reg.Focus.Detach()

	if focus == proc.FocusMain {
		main.focused = true
		return main.render(width, height)
	}
	if focus > 0 {
		for _, col := range cols {
			for _, p := range []*pane{col.out, col.err} {
				if p != nil && p.index == focus {
					p.focused = true
					return p.render(width, height)
				}
			}
		}
		// Focus points past the registered panes; fall through to the
		// overview.
	}

	if len(cols) == 0 {
		return main.render(width, height)
	}

	mainW := int(float64(width) * mainLogShare)
	rest := width - mainW
	colW := rest / len(cols)

	blocks := make([]string, 0, len(cols)+1)
	blocks = append(blocks, main.render(mainW, height))
	for i, col := range cols {
		w := colW
		if i == len(cols)-1 {
			// Last column soaks up the integer-division leftover.
			w = rest - colW*(len(cols)-1)
		}
		blocks = append(blocks, renderColumn(col, w, height))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// renderColumn draws one process region: a single stream pane takes the
// whole column, both streams split it top/bottom, and a hidden process
// leaves the column blank.
func renderColumn(col procPanes, width, height int) string {
	switch {
	case col.out != nil && col.err != nil:
		outH := int(float64(height) * outShare)
		return lipgloss.JoinVertical(lipgloss.Left,
			col.out.render(width, outH),
			col.err.render(width, height-outH))
	case col.out != nil:
		return col.out.render(width, height)
	case col.err != nil:
		return col.err.render(width, height)
	default:
		return lipgloss.NewStyle().Width(width).Height(height).Render("")
	}
}
