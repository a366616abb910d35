// Package procpane is a live multi-pane terminal dashboard over the output
// of already-running processes. The caller spawns its children with piped
// stdout/stderr, registers them, and gets one pane per visible stream plus
// a main log pane; digit keys full-screen a pane, arrows and per-process
// keys scroll, and BlockSearch waits for a substring to show up in a
// process's captured output.
//
// procpane never kills or supervises the children, never persists captured
// output, and owns the terminal until Close (or the ctrl+c binding) tears
// it down.
package procpane

import (
	"fmt"
	"log/slog"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/procpane/procpane/internal/capture"
	"github.com/procpane/procpane/internal/config"
	"github.com/procpane/procpane/internal/keymap"
	"github.com/procpane/procpane/internal/logging"
	"github.com/procpane/procpane/internal/proc"
	"github.com/procpane/procpane/internal/shared"
	"github.com/procpane/procpane/internal/ui"
)

var log = logging.ForComponent(logging.CompProc)

// Re-exported configuration types; see the internal proc package for the
// semantics.
type (
	// Settings is the per-process display configuration.
	Settings = proc.Settings
	// StreamSet selects which streams are shown.
	StreamSet = proc.StreamSet
	// ScrollKeys enables pane scrolling under two named keys.
	ScrollKeys = proc.ScrollKeys
	// Source is an already-running process handed over for capture.
	Source = capture.Source
)

// Stream visibility choices.
const (
	StreamNone   = proc.StreamNone
	StreamOutput = proc.StreamOutput
	StreamError  = proc.StreamError
	StreamBoth   = proc.StreamBoth
)

// Recoverable errors.
var (
	ErrUnknownProcess   = proc.ErrUnknownProcess
	ErrDuplicateProcess = proc.ErrDuplicateProcess
	ErrNoStream         = proc.ErrNoStream
	ErrTooManyPanes     = proc.ErrTooManyPanes
)

// StartCommand starts cmd with piped stdout/stderr and adapts it into a
// Source.
var StartCommand = capture.StartCommand

// StartCommandPTY starts cmd under a pseudo-terminal; children keep
// emitting color, which pairs with Settings.StripANSI.
var StartCommandPTY = capture.StartCommandPTY

// Dashboard is one running dashboard instance. Construct it with New in
// the program's entry point; there is no process-wide singleton.
type Dashboard struct {
	reg  *proc.Registry
	keys *keymap.Table

	prog *tea.Program

	exitCallback *shared.Cell[func()]
	callbackOnce sync.Once
	doneOnce     sync.Once
	done         chan struct{}
	exit         func(int)

	themeWatcher *ui.ThemeWatcher
	cfgWatcher   *config.Watcher
}

// New builds the dashboard and starts its input and render loops. The
// terminal is taken over immediately (alt screen) and handed back on
// Close or the quit key.
func New(opts ...Option) (*Dashboard, error) {
	o := buildOptions(opts)

	cfg, err := config.Load(o.configPath)
	if err != nil {
		// A broken config file must not keep the dashboard from
		// starting; run on defaults and say so in the debug log.
		cfg = config.Default()
		log.Warn("config_load_failed", slog.String("error", err.Error()))
	}
	o.apply(cfg)

	logDir := o.logDir
	if logDir == "" && o.debug {
		logDir, _ = config.Dir()
	}
	logging.Init(logging.Config{
		LogDir:     logDir,
		Level:      cfg.Logs.Level,
		MaxSizeMB:  cfg.Logs.MaxSizeMB,
		MaxBackups: cfg.Logs.MaxBackups,
		MaxAgeDays: cfg.Logs.MaxAgeDays,
		Compress:   cfg.Logs.Compress,
		Debug:      o.debug,
	})

	ui.InitTheme(ui.ResolveTheme(cfg.Theme))

	d := &Dashboard{
		reg:          proc.NewRegistry(),
		exitCallback: shared.NewCell[func()](nil),
		done:         make(chan struct{}),
		exit:         o.exit,
	}
	d.keys = keymap.New(d.reg, d.Quit)

	if o.headless {
		return d, nil
	}

	if cfg.Theme == "system" {
		d.themeWatcher = ui.NewThemeWatcher(o.ctx)
	}
	if o.configPath != "" {
		if w, err := config.NewWatcher(o.configPath); err == nil {
			d.cfgWatcher = w
		}
	}

	model := ui.NewModel(d.reg, d.keys, cfg, d.themeWatcher, d.cfgWatcher)
	d.prog = tea.NewProgram(model, tea.WithAltScreen())

	go d.run()
	return d, nil
}

// run owns the UI loop. Whatever ends the program - the quit binding, an
// external Close, a render failure - funnels through here: bubbletea has
// restored the terminal by the time Run returns, then the exit callback
// fires exactly once and the process terminates. Child processes are left
// running.
func (d *Dashboard) run() {
	if _, err := d.prog.Run(); err != nil {
		log.Error("ui_loop_failed", slog.String("error", err.Error()))
	}
	d.finish()
}

func (d *Dashboard) finish() {
	if d.themeWatcher != nil {
		d.themeWatcher.Close()
	}
	if d.cfgWatcher != nil {
		_ = d.cfgWatcher.Close()
	}

	d.callbackOnce.Do(func() {
		if cb := d.exitCallback.Detach(); cb != nil {
			cb()
		}
	})

	logging.Close()
	d.doneOnce.Do(func() { close(d.done) })
	d.exit(0)
}

// Register adds a process to the dashboard: its visible streams get panes
// and capture goroutines, its exit gets reported in the main log, and its
// scroll and focus keys join the binding table. src must carry a reader
// for every stream the settings mark visible.
func (d *Dashboard) Register(name string, src Source, settings Settings) error {
	if settings.Streams.HasOutput() && src.Out == nil {
		return fmt.Errorf("%w: stdout of %q", ErrNoStream, name)
	}
	if settings.Streams.HasError() && src.Err == nil {
		return fmt.Errorf("%w: stderr of %q", ErrNoStream, name)
	}

	p := proc.NewProcess(name, settings)
	indexes, err := d.reg.Register(p)
	if err != nil {
		return err
	}

	d.bindProcessKeys(p, indexes)
	capture.Start(p, src, d.reg.Main)

	log.Info("process_registered",
		slog.String("name", name),
		slog.Int("panes", len(indexes)))
	return nil
}

// Println appends its arguments to the main log pane.
func (d *Dashboard) Println(args ...any) {
	d.reg.Println(fmt.Sprint(args...))
}

// Printf appends a formatted message to the main log pane.
func (d *Dashboard) Printf(format string, args ...any) {
	d.reg.Println(fmt.Sprintf(format, args...))
}

// BlockSearch blocks the calling goroutine until a line containing substr
// is captured from the named process, and returns that full line. It fails
// fast on an unknown name but otherwise has no timeout: a substring that
// never appears - even because the process exited - blocks forever.
// Concurrent searches on the same process overwrite each other; serialize
// them.
func (d *Dashboard) BlockSearch(process, substr string) (string, error) {
	return d.reg.BlockSearch(process, substr)
}

// OnExit registers fn to run during teardown, after the terminal is
// restored and before the process terminates. The last registration wins.
func (d *Dashboard) OnExit(fn func()) {
	d.exitCallback.Write(func(cb *func()) { *cb = fn })
}

// Quit tears the dashboard down: restore the terminal, run the exit
// callback once, terminate the process with code 0. It is also the effect
// behind the ctrl+c binding.
func (d *Dashboard) Quit() {
	if d.prog != nil {
		d.prog.Quit()
		return
	}
	d.finish()
}

// Close is Quit under the name io users expect.
func (d *Dashboard) Close() error {
	d.Quit()
	return nil
}

// Wait blocks until the dashboard has torn down. Only meaningful when the
// exit function was overridden; by default teardown exits the process.
func (d *Dashboard) Wait() {
	<-d.done
}
