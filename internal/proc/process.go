package proc

import (
	"strings"

	"github.com/procpane/procpane/internal/shared"
)

// StreamSet selects which of a process's streams get a pane.
type StreamSet int

const (
	// StreamNone captures nothing; the process still appears in the
	// registry and its exit is still reported in the main log.
	StreamNone StreamSet = iota
	// StreamOutput shows stdout only.
	StreamOutput
	// StreamError shows stderr only.
	StreamError
	// StreamBoth shows stdout and stderr in a split pane.
	StreamBoth
)

// PaneCount reports how many focusable panes the set contributes.
func (s StreamSet) PaneCount() int {
	switch s {
	case StreamOutput, StreamError:
		return 1
	case StreamBoth:
		return 2
	default:
		return 0
	}
}

// HasOutput reports whether stdout is visible.
func (s StreamSet) HasOutput() bool { return s == StreamOutput || s == StreamBoth }

// HasError reports whether stderr is visible.
func (s StreamSet) HasError() bool { return s == StreamError || s == StreamBoth }

// ScrollKeys names the two keys that scroll a process's panes, in bubbletea
// key notation ("left", "pgup", "k", ...). Shift variants pan horizontally
// and ctrl+Back releases the scroll pin.
type ScrollKeys struct {
	Back    string // scroll toward older lines
	Forward string // scroll toward newer lines
}

// Settings is the per-process display configuration fixed at registration.
type Settings struct {
	// Streams picks which captured streams are visible.
	Streams StreamSet

	// StripANSI removes CSI escape sequences from captured lines before
	// they are stored.
	StripANSI bool

	// Scroll enables pane scrolling under the named keys; nil disables.
	Scroll *ScrollKeys
}

// ScrollStatus is one pane group's scroll position. X is a horizontal pan
// offset saturating at zero. When Pinned is false the pane follows the
// newest line; when true it stays anchored at Pin, counted in lines back
// from the newest.
type ScrollStatus struct {
	X      int
	Pinned bool
	Pin    int
}

// searchRequest is a pending blocking search. The resolving capture
// goroutine delivers the full matched line on result (buffered, capacity 1)
// and clears the slot so later lines stop being compared.
type searchRequest struct {
	substr string
	result chan string
}

// Process is one registered child: its display settings, capture buffers,
// scroll state shared by its pane(s), and the single pending-search slot.
// It lives until program exit; buffers persist after the child dies.
type Process struct {
	Name     string
	Settings Settings

	Out *Buffer
	Err *Buffer

	// Scroll is shared by the out and err panes, as one status per
	// process.
	Scroll *shared.Cell[ScrollStatus]

	search *shared.Cell[*searchRequest]
}

// NewProcess creates an unregistered process with empty buffers.
func NewProcess(name string, settings Settings) *Process {
	return &Process{
		Name:     name,
		Settings: settings,
		Out:      NewBuffer(),
		Err:      NewBuffer(),
		Scroll:   shared.NewCell(ScrollStatus{}),
		search:   shared.NewCell[*searchRequest](nil),
	}
}

// OfferLine gives a captured line a chance to resolve the pending search
// request, if any. The first line containing the wanted substring resolves
// the request; afterwards the slot is empty and later lines are not
// compared until a new request is installed.
func (p *Process) OfferLine(line string) {
	p.search.Write(func(req **searchRequest) {
		r := *req
		if r == nil || !strings.Contains(line, r.substr) {
			return
		}
		r.result <- line
		*req = nil
	})
}

// install replaces the pending search slot, silently dropping any
// unresolved previous request. Concurrent searches on one process must be
// serialized by the caller; an overwritten waiter blocks forever.
func (p *Process) install(substr string) *searchRequest {
	req := &searchRequest{substr: substr, result: make(chan string, 1)}
	p.search.Write(func(cur **searchRequest) { *cur = req })
	return req
}
