package ui

import "github.com/procpane/procpane/internal/proc"

// snapshot is the per-tick view of "has anything changed". Instead of
// copying every buffer and deep-comparing (O(total text) as logs grow), it
// collects the version counter of each shared resource. Each counter is
// read under its own lock, so the vector is eventually consistent across
// fields rather than transactional, which is fine for a best-effort redraw.
type snapshot struct {
	width, height int
	registry      uint64
	main          uint64
	mainScroll    uint64
	focus         uint64
	procs         []procVersions
}

type procVersions struct {
	out, err, scroll uint64
}

func takeSnapshot(reg *proc.Registry, width, height int) snapshot {
	procs := reg.Processes()
	s := snapshot{
		width:      width,
		height:     height,
		registry:   reg.Version(),
		main:       reg.Main.Version(),
		mainScroll: reg.MainScroll.Version(),
		focus:      reg.Focus.Version(),
		procs:      make([]procVersions, len(procs)),
	}
	for i, p := range procs {
		s.procs[i] = procVersions{
			out:    p.Out.Version(),
			err:    p.Err.Version(),
			scroll: p.Scroll.Version(),
		}
	}
	return s
}

func (s snapshot) equal(o snapshot) bool {
	if s.width != o.width || s.height != o.height ||
		s.registry != o.registry || s.main != o.main ||
		s.mainScroll != o.mainScroll || s.focus != o.focus ||
		len(s.procs) != len(o.procs) {
		return false
	}
	for i := range s.procs {
		if s.procs[i] != o.procs[i] {
			return false
		}
	}
	return true
}
