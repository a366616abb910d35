package procpane

import (
	"context"
	"os"
	"time"

	"github.com/procpane/procpane/internal/config"
)

// Option tweaks dashboard construction.
type Option func(*options)

type options struct {
	ctx        context.Context
	configPath string

	theme string
	tick  time.Duration

	logDir string
	debug  bool

	headless bool
	exit     func(int)
}

func buildOptions(opts []Option) *options {
	o := &options{
		ctx:  context.Background(),
		exit: os.Exit,
	}
	if path, err := config.Path(); err == nil {
		o.configPath = path
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// apply folds command-line style overrides into the loaded config. The
// file sets the baseline; explicit options win.
func (o *options) apply(cfg *config.Config) {
	if o.theme != "" {
		cfg.Theme = o.theme
	}
	if o.tick > 0 {
		cfg.TickMs = int(o.tick / time.Millisecond)
		if cfg.TickMs < 1 {
			cfg.TickMs = 1
		}
	}
}

// WithTheme overrides the config file theme: "dark", "light" or "system".
func WithTheme(theme string) Option {
	return func(o *options) { o.theme = theme }
}

// WithTickInterval overrides the redraw check interval.
func WithTickInterval(d time.Duration) Option {
	return func(o *options) { o.tick = d }
}

// WithConfigPath reads the config from path instead of the default
// ~/.procpane/config.toml. An empty path disables the config file and the
// watcher that goes with it.
func WithConfigPath(path string) Option {
	return func(o *options) { o.configPath = path }
}

// WithLogDir writes the debug log under dir.
func WithLogDir(dir string) Option {
	return func(o *options) { o.logDir = dir }
}

// WithDebug enables debug logging to the procpane state directory.
func WithDebug() Option {
	return func(o *options) { o.debug = true }
}

// WithContext bounds the background watchers. Cancelling ctx stops them;
// it does not tear the dashboard down.
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}

// WithoutUI skips the terminal takeover and render loop. Registration,
// capture, the main log and BlockSearch all still work; used when the
// output is inspected programmatically rather than drawn.
func WithoutUI() Option {
	return func(o *options) { o.headless = true }
}

// WithExitFunc replaces os.Exit at teardown. The replacement is expected
// to not return control to the dashboard.
func WithExitFunc(exit func(int)) Option {
	return func(o *options) { o.exit = exit }
}
