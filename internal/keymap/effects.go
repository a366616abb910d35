package keymap

import (
	"strings"
	"unicode"

	"github.com/procpane/procpane/internal/proc"
	"github.com/procpane/procpane/internal/shared"
)

// ScrollBack moves a pane toward older lines: an unpinned pane pins at the
// buffer's current line count, a pinned one decrements toward zero.
func ScrollBack(status *shared.Cell[proc.ScrollStatus], buf *proc.Buffer) Effect {
	return func() {
		status.Write(func(s *proc.ScrollStatus) {
			if !s.Pinned {
				s.Pinned = true
				s.Pin = buf.Len()
				return
			}
			if s.Pin > 0 {
				s.Pin--
			}
		})
	}
}

// ScrollForward moves a pinned pane toward newer lines; an unpinned pane
// already follows the newest line and stays put.
func ScrollForward(status *shared.Cell[proc.ScrollStatus]) Effect {
	return func() {
		status.Write(func(s *proc.ScrollStatus) {
			if s.Pinned {
				s.Pin++
			}
		})
	}
}

// PanLeft decrements the horizontal offset, saturating at zero.
func PanLeft(status *shared.Cell[proc.ScrollStatus]) Effect {
	return func() {
		status.Write(func(s *proc.ScrollStatus) {
			if s.X > 0 {
				s.X--
			}
		})
	}
}

// PanRight increments the horizontal offset.
func PanRight(status *shared.Cell[proc.ScrollStatus]) Effect {
	return func() {
		status.Write(func(s *proc.ScrollStatus) { s.X++ })
	}
}

// ReleasePin drops the vertical anchor so the pane follows the newest line
// again. The horizontal offset is left alone.
func ReleasePin(status *shared.Cell[proc.ScrollStatus]) Effect {
	return func() {
		status.Write(func(s *proc.ScrollStatus) {
			s.Pinned = false
			s.Pin = 0
		})
	}
}

// SetFocus switches the focused pane.
func SetFocus(focus *shared.Cell[int], index int) Effect {
	return func() {
		focus.Write(func(f *int) { *f = index })
	}
}

// ShiftVariant names the shift-modified form of a key: single letters
// become their uppercase rune, named keys get the shift+ prefix.
func ShiftVariant(name string) string {
	runes := []rune(name)
	if len(runes) == 1 && unicode.IsLetter(runes[0]) {
		return strings.ToUpper(name)
	}
	return "shift+" + name
}

// CtrlVariant names the ctrl-modified form of a key.
func CtrlVariant(name string) string {
	return "ctrl+" + name
}
