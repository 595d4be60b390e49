// Package navstack is the hosting shell around the router package.
//
// It owns the Navigator for an application session, applies each committed
// route's localized title to the document title, keeps the rendered view
// chain, and exposes optional plugins (a debug console and an icon set).
package navstack

import (
	"context"
	"image"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/BrandonKowalski/navstack/pkg/navstack/config"
	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/i18n"
	"github.com/BrandonKowalski/navstack/pkg/navstack/icons"
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
	"github.com/BrandonKowalski/navstack/pkg/navstack/router"
)

// Options configures an App.
type Options struct {
	Title    string        // Application title appended to route titles
	Locale   string        // Locale for route titles (default constants.DefaultLocale)
	LogPath  string        // Full path for log file including filename (creates parent directories)
	LogLevel string        // debug, info, warn or error
	Start    string        // Initial path for Start (default "/")
	Plugins  []Plugin      // Enabled plugins
	Logger   *slog.Logger  // Overrides the process logger when set
	Timeout  time.Duration // Bounds each navigation (default constants.DefaultNavigationTimeout)
}

// App is the hosting shell for one application session.
type App struct {
	opts      Options
	nav       *router.Navigator
	logger    *slog.Logger
	localizer *i18n.Localizer
	icons     *icons.Set
	debug     bool

	mu    sync.RWMutex
	title string
	path  string
	chain []router.View
	meta  router.Meta
}

// New creates an App over table. The table is shared read-only; the App's
// Navigator and history are private to this session.
func New(table *router.Table, opts Options) (*App, error) {
	if opts.LogPath != "" {
		internal.SetLogPath(opts.LogPath)
	}

	logger := opts.Logger
	if logger == nil {
		logger = internal.GetLogger()
		if opts.LogLevel != "" {
			internal.SetRawLogLevel(opts.LogLevel)
		}
	}

	localizer, err := i18n.New(opts.Locale)
	if err != nil {
		return nil, NewInfrastructureError("load_locales", err)
	}

	a := &App{
		opts:      opts,
		nav:       router.NewNavigator(table),
		logger:    logger,
		localizer: localizer,
		title:     opts.Title,
	}

	if slices.Contains(opts.Plugins, PluginDebugConsole) {
		a.debug = true
		if opts.Logger == nil {
			internal.SetLogLevel(slog.LevelDebug)
		}
	}
	if slices.Contains(opts.Plugins, PluginIcons) {
		a.icons = icons.NewSet()
	}

	a.nav.OnChange(a.apply)

	a.logger.Debug("navstack shell ready",
		"locale", localizer.Tag().String(),
		"plugins", opts.Plugins,
		"routes", table.Paths())

	return a, nil
}

// FromConfig builds the route table from cfg through reg and creates an App.
func FromConfig(cfg config.Config, reg *config.Registry) (*App, error) {
	plugins, err := ParsePlugins(cfg.Plugins)
	if err != nil {
		return nil, NewInfrastructureError("parse_plugins", err)
	}

	table, err := cfg.BuildTable(reg)
	if err != nil {
		return nil, NewInfrastructureError("build_routes", err)
	}

	return New(table, Options{
		Title:    cfg.Title,
		Locale:   cfg.Locale,
		LogPath:  cfg.LogPath,
		LogLevel: cfg.LogLevel,
		Start:    cfg.Start,
		Plugins:  plugins,
	})
}

// apply is the Navigator listener. It runs under the Navigator's lock, in
// commit order.
func (a *App) apply(res router.Resolution) {
	title := a.localizer.Title(res.Meta)
	if a.opts.Title != "" {
		if title == "" {
			title = a.opts.Title
		} else {
			title += constants.TitleSeparator + a.opts.Title
		}
	}

	a.mu.Lock()
	a.title = title
	a.path = res.Path
	a.chain = res.Chain
	a.meta = res.Meta
	a.mu.Unlock()

	if a.debug {
		names := make([]string, len(res.Chain))
		for i, v := range res.Chain {
			names[i] = v.Name()
		}
		a.logger.Debug("navigated",
			"requested", res.Requested,
			"path", res.Path,
			"redirects", res.Redirects,
			"chain", names,
			"title", title)
	}
}

// Navigator returns the session's Navigator.
func (a *App) Navigator() *router.Navigator {
	return a.nav
}

// Start navigates to the configured start path.
func (a *App) Start(ctx context.Context) error {
	start := a.opts.Start
	if start == "" {
		start = "/"
	}
	return a.Navigate(ctx, start)
}

// Navigate navigates to path and blocks until it commits or fails.
// A navigation superseded by a newer one returns router.ErrSuperseded.
func (a *App) Navigate(ctx context.Context, path string) error {
	ctx, cancel := context.WithTimeout(ctx, a.timeout())
	defer cancel()

	err := a.nav.Navigate(ctx, path)
	a.report("navigate", path, err)
	return err
}

// Go navigates to path in the background. The returned channel receives the
// navigation's result and is then closed.
func (a *App) Go(ctx context.Context, path string) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- a.Navigate(ctx, path)
	}()
	return done
}

// Back navigates to the previous history entry.
func (a *App) Back(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.timeout())
	defer cancel()

	err := a.nav.Back(ctx)
	a.report("back", "", err)
	return err
}

// Forward navigates to the next history entry.
func (a *App) Forward(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.timeout())
	defer cancel()

	err := a.nav.Forward(ctx)
	a.report("forward", "", err)
	return err
}

func (a *App) timeout() time.Duration {
	if a.opts.Timeout > 0 {
		return a.opts.Timeout
	}
	return constants.DefaultNavigationTimeout
}

func (a *App) report(op, path string, err error) {
	switch {
	case err == nil:
	case router.IsSuperseded(err):
		a.logger.Debug("navigation superseded", "op", op, "path", path)
	default:
		a.logger.Error("navigation failed", "op", op, "path", path, "error", err)
	}
}

// DocumentTitle returns the title applied by the last committed navigation.
func (a *App) DocumentTitle() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.title
}

// Path returns the path of the rendered route.
func (a *App) Path() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.path
}

// Chain returns the rendered view chain, outer layout first.
func (a *App) Chain() []router.View {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return slices.Clone(a.chain)
}

// Meta returns the metadata of the rendered route.
func (a *App) Meta() router.Meta {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.meta.Clone()
}

// Localizer returns the session's title localizer.
func (a *App) Localizer() *i18n.Localizer {
	return a.localizer
}

// Icon rasterizes a named icon. It requires PluginIcons.
func (a *App) Icon(name string, size int) (*image.RGBA, error) {
	if a.icons == nil {
		return nil, ErrPluginDisabled
	}
	return a.icons.Rasterize(name, size)
}

// GetLogger returns the process logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the process logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// Close releases the log file, if one was opened.
func Close() {
	internal.CloseLogger()
}
