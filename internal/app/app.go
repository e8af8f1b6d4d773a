package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Sadvi2004/CodeForge/internal/clipboard"
	"github.com/Sadvi2004/CodeForge/internal/config"
	"github.com/Sadvi2004/CodeForge/internal/engine"
	"github.com/Sadvi2004/CodeForge/internal/engine/buffer"
	"github.com/Sadvi2004/CodeForge/internal/event"
	"github.com/Sadvi2004/CodeForge/internal/event/events"
	"github.com/Sadvi2004/CodeForge/internal/input/key"
	"github.com/Sadvi2004/CodeForge/internal/input/shortcut"
	"github.com/Sadvi2004/CodeForge/internal/preview"
	"github.com/Sadvi2004/CodeForge/internal/project"
	"github.com/Sadvi2004/CodeForge/internal/smartedit"
)

// Application is the central coordinator for the playground.
type Application struct {
	// Core infrastructure
	bus     *event.Bus
	config  *config.Config
	logger  *Logger
	session string

	// Buffers, indexed by buffer.Kind
	editors []*engine.Editor
	focus   buffer.Kind

	// Input
	router *shortcut.Router
	interp *smartedit.Interpreter

	// Outputs
	preview        preview.Sink
	previewEnabled bool
	exporter       *project.Exporter
	clipboard      clipboard.Clipboard

	notice events.Notice
}

// Options configures the application.
type Options struct {
	// Config supplies settings. Defaults to config.Default().
	Config *config.Config

	// Logger receives application logs. Defaults to a NullLogger.
	Logger *Logger

	// Preview receives rendered preview documents. Defaults to a
	// preview.FileSink at Config.Preview.Path.
	Preview preview.Sink

	// Export stores project archives. Defaults to a project.DirSink at
	// Config.Export.Dir.
	Export project.Sink

	// Clipboard backs copy and clipboard paste. Defaults to clipboard.New().
	Clipboard clipboard.Clipboard

	// Content is the initial text of each buffer.
	Content map[buffer.Kind]string

	// Now stamps exported archives. Defaults to time.Now.
	Now func() time.Time
}

// New creates an Application and wires its components.
func New(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	app := &Application{
		bus:       event.NewBus(),
		config:    cfg,
		logger:    opts.Logger,
		session:   uuid.NewString(),
		editors:   make([]*engine.Editor, len(buffer.Kinds)),
		router:    shortcut.NewRouter(key.ModCtrl),
		interp:    smartedit.NewInterpreter(),
		preview:   opts.Preview,
		clipboard: opts.Clipboard,
	}
	if app.logger == nil {
		app.logger = NullLogger()
	}
	app.logger = app.logger.WithField("session", app.session[:8])

	if app.clipboard == nil {
		app.clipboard = clipboard.New()
	}
	if app.preview == nil {
		app.preview = preview.NewFileSink(cfg.Preview.Path)
	}

	exportSink := opts.Export
	if exportSink == nil {
		exportSink = project.NewDirSink(cfg.Export.Dir)
	}
	app.exporter = project.NewExporter(exportSink)
	app.exporter.Now = opts.Now

	for _, kind := range buffer.Kinds {
		app.editors[kind] = engine.New(kind,
			engine.WithContent(opts.Content[kind]),
			engine.WithHistoryCapacity(cfg.History.Capacity),
			engine.WithPublisher(app.bus),
		)
	}

	if err := app.subscribe(); err != nil {
		return nil, err
	}
	if err := app.ApplyConfig(cfg); err != nil {
		return nil, err
	}

	app.logger.Info("application ready")
	return app, nil
}

// subscribe wires bus reactions.
func (app *Application) subscribe() error {
	_, err := app.bus.SubscribeFunc(events.TopicBufferChanged, func(ev any) error {
		e, ok := ev.(event.Event[events.BufferChanged])
		if !ok {
			return nil
		}
		app.logger.Debug("buffer %s changed (%s) undo=%d redo=%d",
			e.Payload.Kind, e.Payload.Reason, e.Payload.UndoDepth, e.Payload.RedoDepth)
		app.RenderPreview()
		return nil
	})
	return err
}

// Bus returns the application event bus.
func (app *Application) Bus() *event.Bus {
	return app.bus
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Logger returns the application's logger instance.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Session returns the unique identifier of this run.
func (app *Application) Session() string {
	return app.session
}

// Router returns the shortcut router.
func (app *Application) Router() *shortcut.Router {
	return app.router
}

// Editor returns the editor for kind, or nil for an unknown kind.
func (app *Application) Editor(kind buffer.Kind) *engine.Editor {
	if int(kind) < 0 || int(kind) >= len(app.editors) {
		return nil
	}
	return app.editors[kind]
}

// Focused returns the editor receiving input.
func (app *Application) Focused() *engine.Editor {
	return app.editors[app.focus]
}

// FocusedKind returns the kind of the focused buffer.
func (app *Application) FocusedKind() buffer.Kind {
	return app.focus
}

// Focus moves input focus to kind.
func (app *Application) Focus(kind buffer.Kind) error {
	if app.Editor(kind) == nil {
		return fmt.Errorf("%w: %d", ErrUnknownBuffer, kind)
	}
	if kind == app.focus {
		return nil
	}
	app.focus = kind
	publish(app, events.TopicBufferFocused, events.BufferFocused{Kind: kind})
	return nil
}

// FocusNext moves focus to the next buffer, wrapping around.
func (app *Application) FocusNext() {
	_ = app.Focus(buffer.Kind((int(app.focus) + 1) % len(app.editors)))
}

// FocusPrev moves focus to the previous buffer, wrapping around.
func (app *Application) FocusPrev() {
	n := len(app.editors)
	_ = app.Focus(buffer.Kind((int(app.focus) + n - 1) % n))
}

// ApplyConfig applies cfg to every component. It is used at startup and
// on live reload; an invalid cfg is rejected and nothing changes.
func (app *Application) ApplyConfig(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return NewOperationError("apply", "config", err)
	}

	primary, err := shortcut.ParsePrimary(cfg.Editor.PrimaryModifier)
	if err != nil {
		return NewOperationError("apply", "config", err)
	}

	if level, ok := ParseLogLevel(cfg.Log.Level); ok {
		app.logger.SetLevel(level)
	}

	app.router.SetPrimary(primary)
	app.interp.Primary = primary
	app.interp.Indent = strings.Repeat(" ", cfg.Editor.IndentWidth)

	for _, ed := range app.editors {
		ed.History().SetCapacity(cfg.History.Capacity)
	}

	app.previewEnabled = cfg.Preview.Enabled
	if fs, ok := app.preview.(*preview.FileSink); ok {
		fs.SetPath(cfg.Preview.Path)
	}
	if ds, ok := app.exporter.Sink.(*project.DirSink); ok {
		ds.SetDir(cfg.Export.Dir)
	}
	app.exporter.Name = cfg.Export.FileName

	app.config = cfg
	return nil
}

// Reload applies a configuration loaded from disk and tells the user.
func (app *Application) Reload(cfg *config.Config) error {
	if err := app.ApplyConfig(cfg); err != nil {
		app.Notify("Config error: "+err.Error(), events.SeverityError)
		return err
	}
	publish(app, events.TopicConfigReloaded, events.ConfigReloaded{Path: cfg.Path})
	app.Notify(MsgConfigReloaded, events.SeverityInfo)
	return nil
}
