// Package keymap is the ordered keyboard binding table. Every incoming key
// event is checked against every binding, in registration order, and the
// effect of each match runs; bindings may deliberately share a chord, so
// dispatch never stops at the first hit.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/procpane/procpane/internal/proc"
	"github.com/procpane/procpane/internal/shared"
)

// Effect is the action a matched binding performs. Effects mutate shared
// state (scroll, focus) or trigger shutdown; they never block.
type Effect func()

// Binding pairs a key pattern with its effect.
type Binding struct {
	Keys   key.Binding
	Effect Effect
}

// Table is the growable binding list. Registration appends while the input
// loop dispatches, so the list itself lives in a cell.
type Table struct {
	bindings *shared.Cell[[]Binding]
}

// New creates a table holding the built-in bindings: quit on ctrl+c, main
// log scrolling on the arrows, main log focus on '0', and focus clearing on
// escape. quit is supplied by the lifecycle owner and must not return.
func New(reg *proc.Registry, quit Effect) *Table {
	t := &Table{bindings: shared.NewCell[[]Binding](nil)}

	t.Bind(key.NewBinding(key.WithKeys("ctrl+c")), quit)
	t.Bind(key.NewBinding(key.WithKeys("up")), ScrollBack(reg.MainScroll, reg.Main))
	t.Bind(key.NewBinding(key.WithKeys("down")), ScrollForward(reg.MainScroll))
	t.Bind(key.NewBinding(key.WithKeys("left")), PanLeft(reg.MainScroll))
	t.Bind(key.NewBinding(key.WithKeys("right")), PanRight(reg.MainScroll))
	t.Bind(key.NewBinding(key.WithKeys("0")), SetFocus(reg.Focus, proc.FocusMain))
	t.Bind(key.NewBinding(key.WithKeys("esc")), SetFocus(reg.Focus, proc.FocusOverview))

	return t
}

// Bind appends a binding. Order is dispatch order.
func (t *Table) Bind(keys key.Binding, effect Effect) {
	t.bindings.Write(func(bs *[]Binding) {
		*bs = append(*bs, Binding{Keys: keys, Effect: effect})
	})
}

// Apply runs the effect of every binding matching msg, in registration
// order.
func (t *Table) Apply(msg tea.KeyMsg) {
	var effects []Effect
	t.bindings.Read(func(bs []Binding) {
		for _, b := range bs {
			if key.Matches(msg, b.Keys) {
				effects = append(effects, b.Effect)
			}
		}
	})
	for _, effect := range effects {
		effect()
	}
}

// Len reports the number of installed bindings.
func (t *Table) Len() int {
	var n int
	t.bindings.Read(func(bs []Binding) { n = len(bs) })
	return n
}
