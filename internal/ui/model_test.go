package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/procpane/procpane/internal/config"
	"github.com/procpane/procpane/internal/keymap"
	"github.com/procpane/procpane/internal/proc"
)

func newTestModel(t *testing.T, reg *proc.Registry) *Model {
	t.Helper()
	keys := keymap.New(reg, func() {})
	m := NewModel(reg, keys, config.Default(), nil, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func tick(m *Model) {
	m.Update(tickMsg(time.Now()))
}

func TestFirstTickRendersFrame(t *testing.T) {
	reg := proc.NewRegistry()
	reg.Println("hello")
	m := newTestModel(t, reg)

	require.Empty(t, m.View())
	tick(m)
	require.Contains(t, m.View(), "hello")
	require.Equal(t, 1, m.renders)
}

func TestUnchangedSnapshotSkipsRender(t *testing.T) {
	reg := proc.NewRegistry()
	reg.Println("static")
	m := newTestModel(t, reg)

	tick(m)
	frame := m.View()

	// Nothing mutated between ticks: the cached frame must be reused
	// without a redraw.
	for i := 0; i < 5; i++ {
		tick(m)
	}
	require.Equal(t, 1, m.renders)
	require.Equal(t, frame, m.View())
}

func TestMutationTriggersRedraw(t *testing.T) {
	reg := proc.NewRegistry()
	m := newTestModel(t, reg)

	tick(m)
	reg.Println("new line")
	tick(m)

	require.Equal(t, 2, m.renders)
	require.Contains(t, m.View(), "new line")
}

func TestScrollChangeTriggersRedraw(t *testing.T) {
	reg := proc.NewRegistry()
	reg.Println("a")
	m := newTestModel(t, reg)

	tick(m)
	m.Update(tea.KeyMsg{Type: tea.KeyUp}) // pins the main log
	tick(m)

	require.Equal(t, 2, m.renders)
	require.Contains(t, m.View(), "scrolling")
}

func TestResizeInvalidatesFrame(t *testing.T) {
	reg := proc.NewRegistry()
	m := newTestModel(t, reg)

	tick(m)
	m.Update(tea.WindowSizeMsg{Width: 50, Height: 20})
	tick(m)
	require.Equal(t, 2, m.renders)
}

func TestKeyDispatchReachesBindingTable(t *testing.T) {
	reg := proc.NewRegistry()
	m := newTestModel(t, reg)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'0'}})
	require.Equal(t, proc.FocusMain, reg.Focus.Detach())

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, proc.FocusOverview, reg.Focus.Detach())
}

func TestConfigReloadAdjustsTick(t *testing.T) {
	reg := proc.NewRegistry()
	m := newTestModel(t, reg)

	cfg := config.Default()
	cfg.TickMs = 200
	m.Update(configReloadedMsg(cfg))

	require.Equal(t, 200*time.Millisecond, m.tick)
}
