package procpane

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"

	"github.com/procpane/procpane/internal/keymap"
	"github.com/procpane/procpane/internal/proc"
)

// bindProcessKeys installs the keyboard surface a registration brings
// with it: one digit per visible pane for full-screen focus, and the
// optional scroll cluster.
//
// The scroll cluster hangs off the two configured keys: bare keys scroll
// the pane back and forward, their shift variants pan horizontally, and
// ctrl plus the back key releases the scroll pin. Both panes of a Both
// process share one scroll state, so one cluster drives them together.
func (d *Dashboard) bindProcessKeys(p *proc.Process, indexes []int) {
	for _, idx := range indexes {
		d.keys.Bind(key.NewBinding(key.WithKeys(strconv.Itoa(idx))),
			keymap.SetFocus(d.reg.Focus, idx))
	}

	if p.Settings.Scroll == nil {
		return
	}

	buf := p.Out
	if !p.Settings.Streams.HasOutput() {
		buf = p.Err
	}

	back, fwd := p.Settings.Scroll.Back, p.Settings.Scroll.Forward
	d.keys.Bind(key.NewBinding(key.WithKeys(back)), keymap.ScrollBack(p.Scroll, buf))
	d.keys.Bind(key.NewBinding(key.WithKeys(fwd)), keymap.ScrollForward(p.Scroll))
	d.keys.Bind(key.NewBinding(key.WithKeys(keymap.ShiftVariant(back))), keymap.PanLeft(p.Scroll))
	d.keys.Bind(key.NewBinding(key.WithKeys(keymap.ShiftVariant(fwd))), keymap.PanRight(p.Scroll))
	d.keys.Bind(key.NewBinding(key.WithKeys(keymap.CtrlVariant(back))), keymap.ReleasePin(p.Scroll))
}
