package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/procpane/procpane/internal/proc"
)

// paneKind tags a pane with the stream it shows.
type paneKind int

const (
	paneMain paneKind = iota
	paneOut
	paneErr
)

func (k paneKind) label() string {
	switch k {
	case paneOut:
		return "Out"
	case paneErr:
		return "Err"
	default:
		return "Main"
	}
}

func (k paneKind) style() lipgloss.Style {
	switch k {
	case paneOut:
		return TagOutStyle
	case paneErr:
		return TagErrStyle
	default:
		return TagMainStyle
	}
}

// pane is everything needed to draw one screen region: detached data only,
// no shared state.
type pane struct {
	name    string // process name, empty for the main log
	kind    paneKind
	index   int  // focus digit, 0 for main
	focused bool // rendered full-screen
	lines   []string
	scroll  proc.ScrollStatus
}

// render draws the pane into a w×h cell block: a border, a title row with
// the name, stream tag and focus hint, and the scrolled, wrapped content.
func (p pane) render(w, h int) string {
	if w < 4 || h < 3 {
		return lipgloss.NewStyle().Width(w).Height(h).Render("")
	}

	innerW := w - 2 // border columns
	innerH := h - 2 // border rows

	rows := make([]string, 0, innerH)
	rows = append(rows, p.titleRow(innerW))
	rows = append(rows, p.contentRows(innerW, innerH-1)...)

	border := PaneBorderStyle
	if p.focused {
		border = PaneFocusedBorderStyle
	}
	return border.Width(innerW).Height(innerH).Render(strings.Join(rows, "\n"))
}

// titleRow lays out "name Tag" on the left and the focus hint (plus the
// scrolling indicator when pinned) on the right.
func (p pane) titleRow(width int) string {
	left := p.kind.style().Render(p.kind.label())
	if p.name != "" {
		left = PaneNameStyle.Render(p.name) + " " + left
	}

	hint := fmt.Sprintf("full screen: '%d'", p.index)
	if p.focused {
		hint = "press 'esc' to exit full screen"
	}
	right := HintStyle.Render(hint)
	if p.scroll.Pinned {
		right = ScrollingStyle.Render("scrolling") + " " + right
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Not enough room for both; the hint loses.
		return truncateTo(left, width)
	}
	return left + strings.Repeat(" ", gap) + right
}

// contentRows picks the visible window of lines and wraps it to the pane
// width. Unpinned panes anchor at the newest line; pinned panes anchor at
// the pin offset, counted back from the newest.
func (p pane) contentRows(width, height int) []string {
	if height <= 0 || len(p.lines) == 0 {
		return nil
	}

	bottom := len(p.lines) - 1
	if p.scroll.Pinned {
		bottom = len(p.lines) - 1 - min(p.scroll.Pin, len(p.lines))
		if bottom < 0 {
			bottom = 0
		}
	}

	// Wrap backwards from the anchor until the pane is full.
	var rows []string
	for i := bottom; i >= 0 && len(rows) < height; i-- {
		line := PanLine(p.lines[i], p.scroll.X)
		wrapped := WrapLine(line, width)
		for j := len(wrapped) - 1; j >= 0; j-- {
			rows = append(rows, ContentStyle.Render(wrapped[j]))
		}
	}
	if len(rows) > height {
		rows = rows[:height]
	}

	// rows were collected bottom-up
	out := make([]string, len(rows))
	for i, r := range rows {
		out[len(rows)-1-i] = r
	}
	return out
}

func truncateTo(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "")
}
