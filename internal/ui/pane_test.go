package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/procpane/procpane/internal/proc"
)

func plainPane(lines ...string) pane {
	return pane{name: "Foo", kind: paneOut, index: 1, lines: lines}
}

func TestPaneRenderDimensions(t *testing.T) {
	out := plainPane("a", "b").render(20, 6)
	rows := strings.Split(out, "\n")
	require.Len(t, rows, 6)
	for _, row := range rows {
		require.Equal(t, 20, lipgloss.Width(row))
	}
}

func TestPaneShowsNameTagAndHint(t *testing.T) {
	out := plainPane("hello").render(40, 5)
	require.Contains(t, out, "Foo")
	require.Contains(t, out, "Out")
	require.Contains(t, out, "full screen: '1'")
}

func TestFocusedPaneShowsExitHint(t *testing.T) {
	p := plainPane("hello")
	p.focused = true
	out := p.render(50, 5)
	require.Contains(t, out, "press 'esc' to exit full screen")
	require.NotContains(t, out, "full screen: '1'")
}

func TestMainPaneLabel(t *testing.T) {
	p := pane{kind: paneMain, index: 0, lines: []string{"msg"}}
	out := p.render(40, 5)
	require.Contains(t, out, "Main")
	require.Contains(t, out, "full screen: '0'")
}

func TestPaneFollowsNewestByDefault(t *testing.T) {
	lines := []string{"oldest", "middle-1", "middle-2", "middle-3", "newest"}
	// Room for only two content rows.
	out := plainPane(lines...).render(30, 5)
	require.Contains(t, out, "newest")
	require.NotContains(t, out, "oldest")
}

func TestPinnedPaneAnchorsAndIndicates(t *testing.T) {
	p := plainPane("first", "second", "third", "fourth")
	p.scroll = proc.ScrollStatus{Pinned: true, Pin: 2}
	out := p.render(60, 5)

	// Pin 2 anchors two lines back from the newest.
	require.Contains(t, out, "second")
	require.NotContains(t, out, "fourth")
	require.Contains(t, out, "scrolling")
}

func TestPinnedPastTopClampsToFirstLine(t *testing.T) {
	p := plainPane("first", "second")
	p.scroll = proc.ScrollStatus{Pinned: true, Pin: 99}
	out := p.render(30, 5)
	require.Contains(t, out, "first")
}

func TestHorizontalPanCutsColumns(t *testing.T) {
	p := plainPane("abcdef")
	p.scroll = proc.ScrollStatus{X: 3}
	out := p.render(30, 5)
	require.Contains(t, out, "def")
	require.NotContains(t, out, "abc")
}

func TestTinyPaneDoesNotPanic(t *testing.T) {
	require.NotPanics(t, func() {
		plainPane("x").render(2, 1)
		plainPane("x").render(0, 0)
	})
}
