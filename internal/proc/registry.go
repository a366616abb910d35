package proc

import (
	"fmt"

	"github.com/procpane/procpane/internal/shared"
)

// FocusOverview is the focus value for the split-screen overview;
// FocusMain full-screens the main log. Values 1..9 address visible process
// streams in registration order.
const (
	FocusOverview = -1
	FocusMain     = 0
)

// maxFocusable is the highest pane index reachable from the keyboard:
// the decimal digits are the only single-key focus shortcuts and 0 is
// reserved for the main log.
const maxFocusable = 9

// Registry is the ordered list of registered processes plus the main log
// and the focus state. Each field is guarded independently; there are no
// cross-field transactions.
type Registry struct {
	procs *shared.Cell[[]*Process]

	// Main receives injected messages and process exit notices.
	Main *Buffer

	// MainScroll is the main log pane's scroll position.
	MainScroll *shared.Cell[ScrollStatus]

	// Focus holds FocusOverview, FocusMain, or a 1-based pane index.
	Focus *shared.Cell[int]
}

// NewRegistry creates an empty registry showing the overview.
func NewRegistry() *Registry {
	return &Registry{
		procs:      shared.NewCell[[]*Process](nil),
		Main:       NewBuffer(),
		MainScroll: shared.NewCell(ScrollStatus{}),
		Focus:      shared.NewCell(FocusOverview),
	}
}

// Register appends p and returns the pane indexes its visible streams got:
// 1 + the sum of visible-stream counts of everything registered before it,
// then one index per visible stream. Fails without side effects on a
// duplicate name or when an index would pass beyond the digit keys.
func (r *Registry) Register(p *Process) ([]int, error) {
	var indexes []int
	var err error

	r.procs.Write(func(procs *[]*Process) {
		pre := 0
		for _, existing := range *procs {
			if existing.Name == p.Name {
				err = fmt.Errorf("%w: %q", ErrDuplicateProcess, p.Name)
				return
			}
			pre += existing.Settings.Streams.PaneCount()
		}

		count := p.Settings.Streams.PaneCount()
		if pre+count > maxFocusable {
			err = fmt.Errorf("%w: %q would take pane %d", ErrTooManyPanes, p.Name, pre+count)
			return
		}

		for i := 1; i <= count; i++ {
			indexes = append(indexes, pre+i)
		}
		*procs = append(*procs, p)
	})

	if err != nil {
		return nil, err
	}
	return indexes, nil
}

// Lookup returns the process registered under name, or nil.
func (r *Registry) Lookup(name string) *Process {
	var found *Process
	r.procs.Read(func(procs []*Process) {
		for _, p := range procs {
			if p.Name == name {
				found = p
				return
			}
		}
	})
	return found
}

// Processes returns a detached copy of the registration-ordered list.
func (r *Registry) Processes() []*Process {
	var out []*Process
	r.procs.Read(func(procs []*Process) {
		out = make([]*Process, len(procs))
		copy(out, procs)
	})
	return out
}

// Version reports the number of registrations, for the render loop's
// changed check.
func (r *Registry) Version() uint64 {
	return r.procs.Version()
}

// Println appends a message to the main log. It cannot fail.
func (r *Registry) Println(msg string) {
	r.Main.Append(msg)
}

// BlockSearch installs a search request for substr on the named process and
// blocks until a captured line containing it arrives, returning that full
// line. An unresolved earlier request on the same process is silently
// overwritten. There is no timeout: if the substring never appears, even
// because the process exited, the call blocks forever.
func (r *Registry) BlockSearch(name, substr string) (string, error) {
	p := r.Lookup(name)
	if p == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownProcess, name)
	}
	return <-p.install(substr).result, nil
}
