package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/procpane/procpane/internal/proc"
	"github.com/procpane/procpane/internal/shared"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestApplyRunsEveryMatchInOrder(t *testing.T) {
	reg := proc.NewRegistry()
	table := New(reg, func() {})

	var order []string
	table.Bind(key.NewBinding(key.WithKeys("x")), func() { order = append(order, "first") })
	table.Bind(key.NewBinding(key.WithKeys("x")), func() { order = append(order, "second") })

	table.Apply(keyMsg("x"))
	require.Equal(t, []string{"first", "second"}, order)
}

func TestApplyIgnoresNonMatching(t *testing.T) {
	reg := proc.NewRegistry()
	table := New(reg, func() {})

	fired := false
	table.Bind(key.NewBinding(key.WithKeys("x")), func() { fired = true })

	table.Apply(keyMsg("y"))
	require.False(t, fired)
}

func TestBuiltinFocusKeys(t *testing.T) {
	reg := proc.NewRegistry()
	table := New(reg, func() {})

	require.Equal(t, proc.FocusOverview, reg.Focus.Detach())

	table.Apply(keyMsg("0"))
	require.Equal(t, proc.FocusMain, reg.Focus.Detach())

	table.Apply(keyMsg("esc"))
	require.Equal(t, proc.FocusOverview, reg.Focus.Detach())
}

func TestBuiltinQuitBinding(t *testing.T) {
	reg := proc.NewRegistry()
	quitCalls := 0
	table := New(reg, func() { quitCalls++ })

	table.Apply(keyMsg("ctrl+c"))
	require.Equal(t, 1, quitCalls)
}

func TestBuiltinMainScroll(t *testing.T) {
	reg := proc.NewRegistry()
	table := New(reg, func() {})

	reg.Main.Append("one")
	reg.Main.Append("two")
	reg.Main.Append("three")

	// First scroll back pins at the current line count.
	table.Apply(keyMsg("up"))
	s := reg.MainScroll.Detach()
	require.True(t, s.Pinned)
	require.Equal(t, 3, s.Pin)

	// Further scroll back decrements, scroll forward increments.
	table.Apply(keyMsg("up"))
	require.Equal(t, 2, reg.MainScroll.Detach().Pin)
	table.Apply(keyMsg("down"))
	require.Equal(t, 3, reg.MainScroll.Detach().Pin)

	// Horizontal pan saturates at zero.
	table.Apply(keyMsg("left"))
	require.Equal(t, 0, reg.MainScroll.Detach().X)
	table.Apply(keyMsg("right"))
	table.Apply(keyMsg("right"))
	require.Equal(t, 2, reg.MainScroll.Detach().X)
	table.Apply(keyMsg("left"))
	require.Equal(t, 1, reg.MainScroll.Detach().X)
}

func TestScrollBackSaturatesAtZero(t *testing.T) {
	status := shared.NewCell(proc.ScrollStatus{})
	buf := proc.NewBuffer()
	buf.Append("only")

	back := ScrollBack(status, buf)
	back() // pin at 1
	back() // 0
	back() // stays 0
	s := status.Detach()
	require.True(t, s.Pinned)
	require.Equal(t, 0, s.Pin)
}

func TestReleasePin(t *testing.T) {
	status := shared.NewCell(proc.ScrollStatus{X: 4, Pinned: true, Pin: 7})

	ReleasePin(status)()
	s := status.Detach()
	require.False(t, s.Pinned)
	require.Equal(t, 4, s.X, "release keeps the horizontal offset")
}

func TestScrollForwardUnpinnedIsNoop(t *testing.T) {
	status := shared.NewCell(proc.ScrollStatus{})
	ScrollForward(status)()
	require.False(t, status.Detach().Pinned)
	require.Equal(t, 0, status.Detach().Pin)
}

func TestShiftVariant(t *testing.T) {
	require.Equal(t, "J", ShiftVariant("j"))
	require.Equal(t, "shift+left", ShiftVariant("left"))
	require.Equal(t, "shift+pgup", ShiftVariant("pgup"))
}

func TestCtrlVariant(t *testing.T) {
	require.Equal(t, "ctrl+k", CtrlVariant("k"))
	require.Equal(t, "ctrl+left", CtrlVariant("left"))
}
