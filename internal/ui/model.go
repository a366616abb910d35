// Package ui is the bubbletea front end: it turns the shared capture state
// into frames on a fixed tick, skipping the render entirely when nothing
// changed, and feeds every key press through the binding table.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/procpane/procpane/internal/config"
	"github.com/procpane/procpane/internal/keymap"
	"github.com/procpane/procpane/internal/logging"
	"github.com/procpane/procpane/internal/proc"
)

var uiLog = logging.ForComponent(logging.CompUI)

type (
	tickMsg           time.Time
	themeChangedMsg   bool
	configReloadedMsg *config.Config
)

// Model drives the dashboard. All mutable dashboard state lives in the
// registry's cells; the model only caches the last rendered frame and the
// version vector it was built from.
type Model struct {
	reg  *proc.Registry
	keys *keymap.Table

	tick     time.Duration
	cfgTheme string // configured name, "system" follows the OS

	width  int
	height int

	frame    string
	last     snapshot
	rendered bool
	renders  int // frames actually rebuilt, for the debug log

	themeWatcher *ThemeWatcher
	cfgWatcher   *config.Watcher
}

// NewModel builds the model. Watchers may be nil; the theme watcher only
// matters while the configured theme is "system".
func NewModel(reg *proc.Registry, keys *keymap.Table, cfg *config.Config, tw *ThemeWatcher, cw *config.Watcher) *Model {
	return &Model{
		reg:          reg,
		keys:         keys,
		tick:         time.Duration(cfg.TickMs) * time.Millisecond,
		cfgTheme:     cfg.Theme,
		themeWatcher: tw,
		cfgWatcher:   cw,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), m.waitTheme(), m.waitConfig())
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) waitTheme() tea.Cmd {
	if m.themeWatcher == nil {
		return nil
	}
	ch := m.themeWatcher.ChangeChannel()
	return func() tea.Msg {
		isDark, ok := <-ch
		if !ok {
			return nil
		}
		return themeChangedMsg(isDark)
	}
}

func (m *Model) waitConfig() tea.Cmd {
	if m.cfgWatcher == nil {
		return nil
	}
	ch := m.cfgWatcher.ReloadChannel()
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return configReloadedMsg(cfg)
	}
}

// invalidate forces the next tick to rebuild the frame.
func (m *Model) invalidate() {
	m.rendered = false
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.invalidate()
		return m, nil

	case tea.KeyMsg:
		// Every binding matching the key fires, in registration order.
		m.keys.Apply(msg)
		return m, nil

	case tickMsg:
		snap := takeSnapshot(m.reg, m.width, m.height)
		if !m.rendered || !snap.equal(m.last) {
			m.frame = renderFrame(m.reg, m.width, m.height)
			m.last = snap
			m.rendered = true
			m.renders++
		}
		return m, m.tickCmd()

	case themeChangedMsg:
		if m.cfgTheme == "system" {
			if bool(msg) {
				InitTheme("dark")
			} else {
				InitTheme("light")
			}
			uiLog.Info("theme_followed_os", "dark", bool(msg))
			m.invalidate()
		}
		return m, m.waitTheme()

	case configReloadedMsg:
		cfg := (*config.Config)(msg)
		m.cfgTheme = cfg.Theme
		InitTheme(ResolveTheme(cfg.Theme))
		if cfg.TickMs > 0 {
			m.tick = time.Duration(cfg.TickMs) * time.Millisecond
		}
		m.invalidate()
		return m, m.waitConfig()
	}
	return m, nil
}

// View implements tea.Model, returning the cached frame.
func (m *Model) View() string {
	return m.frame
}
