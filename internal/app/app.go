package app

import (
	"io"
	"sync"
	"sync/atomic"

	"peruse/internal/config"
	"peruse/internal/renderer/backend"
	"peruse/internal/renderer/core"
	"peruse/internal/renderer/statusline"
	"peruse/internal/view"
	"peruse/internal/watch"
)

// Options configures the application.
type Options struct {
	// Path is the file to view; empty opens an empty document.
	Path string

	// ConfigPath is the path to the configuration file.
	// Empty means the default location.
	ConfigPath string

	// LogLevel overrides the configured logging verbosity when non-empty.
	LogLevel string

	// LogFile overrides the configured log output file when non-empty.
	LogFile string

	// Follow enables reloading the file when it changes on disk.
	Follow bool
}

// Application is the central coordinator: it owns the view, the terminal
// backend and the optional file watcher, and runs the event loop.
type Application struct {
	view    *view.View
	backend backend.Backend
	watcher *watch.Watcher

	cfg       config.Config
	logger    *Logger
	logCloser io.Closer
	logOnce   sync.Once

	running atomic.Bool
	opts    Options
}

// New creates an Application with the given options. The startup file, if
// any, is loaded here so a failure surfaces before any UI is shown.
func New(opts Options) (*Application, error) {
	app := &Application{opts: opts}

	if err := app.bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// bootstrap initializes components in dependency order.
func (app *Application) bootstrap() error {
	configPath := app.opts.ConfigPath
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}

	// Command-line flags win over file and environment.
	if app.opts.LogLevel != "" {
		cfg.Log.Level = app.opts.LogLevel
	}
	if app.opts.LogFile != "" {
		cfg.Log.File = app.opts.LogFile
	}
	if app.opts.Follow {
		cfg.Follow = true
	}
	app.cfg = cfg

	logger, closer, err := OpenFileLogger(ParseLogLevel(cfg.Log.Level), cfg.Log.File)
	if err != nil {
		return err
	}
	app.logger = logger
	app.logCloser = closer

	viewOpts, err := viewOptions(cfg)
	if err != nil {
		return &InitError{Component: "theme", Err: err}
	}
	app.view = view.New(viewOpts)

	if app.opts.Path != "" {
		if err := app.view.Load(app.opts.Path); err != nil {
			return NewOperationError("load", app.opts.Path, err)
		}
		app.logger.Info("loaded %s (%d lines)", app.opts.Path, app.view.Document().LineCount())
	}

	return nil
}

// viewOptions builds view options from the theme configuration.
func viewOptions(cfg config.Config) (view.Options, error) {
	opts := view.DefaultOptions()
	opts.Placeholder = cfg.PlaceholderRune()

	style := core.DefaultStyle()
	if cfg.Theme.Foreground != "" {
		fg, err := core.ColorFromHex(cfg.Theme.Foreground)
		if err != nil {
			return opts, err
		}
		style = style.WithForeground(fg)
	}
	if cfg.Theme.Background != "" {
		bg, err := core.ColorFromHex(cfg.Theme.Background)
		if err != nil {
			return opts, err
		}
		style = style.WithBackground(bg)
	}
	opts.Text = style
	opts.Status = statusline.Styles{Bar: style.Reverse()}

	return opts, nil
}

// SetBackend sets the terminal backend. Must be called before Run.
func (app *Application) SetBackend(b backend.Backend) {
	app.backend = b
}

// View returns the viewport controller, for testing.
func (app *Application) View() *view.View {
	return app.view
}

// Run initializes the backend and drives the event loop until a quit
// request or an error. Returns ErrQuit on a normal quit.
func (app *Application) Run() error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()

	if app.cfg.Follow && app.view.Document().Path() != "" {
		if err := app.startWatcher(); err != nil {
			// Follow mode is best-effort; the viewer still works without it.
			app.logger.Warn("follow mode unavailable: %v", err)
		} else {
			defer func() { _ = app.watcher.Close() }()
		}
	}

	return app.eventLoop()
}

// startWatcher starts the follow-mode file watcher. The callback only posts
// a synthetic event; the reload happens on the event-loop goroutine.
func (app *Application) startWatcher() error {
	w, err := watch.New(app.view.Document().Path(), func() {
		app.backend.PostEvent(backend.Event{Type: backend.EventRefresh})
	})
	if err != nil {
		return err
	}
	app.watcher = w
	app.logger.Debug("watching %s", w.Path())
	return nil
}

// eventLoop alternates strictly: render, block for input, handle the event.
func (app *Application) eventLoop() error {
	for app.running.Load() {
		app.view.Render(app.backend)

		ev := app.backend.PollEvent()

		if err := app.handleEvent(ev); err != nil {
			return err
		}
	}
	return ErrQuit
}

// Shutdown requests a stop from another goroutine, waking the event loop.
func (app *Application) Shutdown() {
	if app.running.CompareAndSwap(true, false) && app.backend != nil {
		app.backend.PostEvent(backend.Event{Type: backend.EventNone})
	}
	app.logOnce.Do(func() {
		if app.logCloser != nil {
			_ = app.logCloser.Close()
		}
	})
}
