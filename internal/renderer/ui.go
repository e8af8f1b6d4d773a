package renderer

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/Sadvi2004/CodeForge/internal/app"
	"github.com/Sadvi2004/CodeForge/internal/config"
	"github.com/Sadvi2004/CodeForge/internal/engine/buffer"
	"github.com/Sadvi2004/CodeForge/internal/event/events"
	"github.com/Sadvi2004/CodeForge/internal/input/shortcut"
	"github.com/Sadvi2004/CodeForge/internal/renderer/backend"
)

// Title is shown at the right of the tab bar.
const Title = "CodeForge"

// Interrupt payloads.
type (
	reloadMsg struct {
		cfg *config.Config
		err error
	}
	stopMsg struct{}
)

// hinted lists the commands advertised in the status line.
var hinted = []shortcut.Command{shortcut.NextBuffer, shortcut.Export, shortcut.Quit}

// UI runs the terminal event loop for an Application. The loop goroutine
// is the only one that touches the Application.
type UI struct {
	app      *app.Application
	term     *backend.Terminal
	renderer *Renderer
	logger   *app.Logger
}

// NewUI creates a UI drawing app on term. term must already be initialized.
func NewUI(a *app.Application, term *backend.Terminal) (*UI, error) {
	theme, err := NewTheme(a.Config().Theme)
	if err != nil {
		return nil, err
	}
	return &UI{
		app:      a,
		term:     term,
		renderer: New(term, theme),
		logger:   a.Logger().WithComponent("ui"),
	}, nil
}

// Renderer returns the UI's renderer.
func (ui *UI) Renderer() *Renderer {
	return ui.renderer
}

// PostReload hands a reloaded configuration, or the error loading it, to
// the event loop. It is safe to call from any goroutine and matches
// config.ReloadFunc.
func (ui *UI) PostReload(cfg *config.Config, err error) {
	if perr := ui.term.PostInterrupt(reloadMsg{cfg: cfg, err: err}); perr != nil {
		ui.logger.Warn("dropped config reload: %v", perr)
	}
}

// Run draws the application and processes terminal events until the user
// quits, ctx is canceled, or the terminal is closed.
func (ui *UI) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = ui.term.PostInterrupt(stopMsg{})
		case <-done:
		}
	}()

	ui.Draw()
	for {
		ev, err := ui.term.PollEvent()
		if err != nil {
			if errors.Is(err, backend.ErrClosed) {
				return nil
			}
			return err
		}

		stop, err := ui.dispatch(ev)
		if err != nil {
			ui.report(err)
		}
		if stop {
			return ctx.Err()
		}
		ui.Draw()
	}
}

// dispatch handles one event. A panic in a handler is recovered and
// reported so a bad keystroke never takes the editor down.
func (ui *UI) dispatch(ev backend.Event) (stop bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = app.NewRecoveredPanicError(r, string(debug.Stack()))
		}
	}()

	switch ev.Type {
	case backend.EventKey:
		err = ui.app.HandleKey(ev.Key)
		if errors.Is(err, app.ErrQuit) {
			return true, nil
		}
		return false, err

	case backend.EventPaste:
		return false, ui.app.Paste(ev.PasteText)

	case backend.EventInterrupt:
		switch msg := ev.Data.(type) {
		case stopMsg:
			return true, nil
		case reloadMsg:
			ui.reload(msg.cfg, msg.err)
		}
	}
	return false, nil
}

func (ui *UI) reload(cfg *config.Config, err error) {
	if err != nil {
		ui.logger.Warn("config reload failed: %v", err)
		ui.app.Notify("Config error: "+err.Error(), events.SeverityError)
		return
	}
	if err := ui.app.Reload(cfg); err != nil {
		return
	}
	theme, err := NewTheme(cfg.Theme)
	if err != nil {
		ui.logger.Warn("theme: %v", err)
		return
	}
	ui.renderer.SetTheme(theme)
}

func (ui *UI) report(err error) {
	var perr *app.RecoveredPanicError
	if errors.As(err, &perr) {
		ui.logger.Error("recovered %v\n%s", perr, perr.Stack)
		ui.app.Notify(fmt.Sprintf("Internal error: %v", perr.Value), events.SeverityError)
		return
	}
	ui.logger.Error("%v", err)
	ui.app.Notify(err.Error(), events.SeverityError)
}

// Draw renders the current application state.
func (ui *UI) Draw() {
	ui.renderer.Draw(ui.View())
}

// View captures the application state for one frame.
func (ui *UI) View() View {
	a := ui.app
	ed := a.Focused()
	start, end := ed.Selection()

	tabs := make([]string, len(buffer.Kinds))
	for i, k := range buffer.Kinds {
		tabs[i] = k.Title()
	}

	return View{
		Title:    Title,
		Tabs:     tabs,
		Active:   int(a.FocusedKind()),
		Text:     ed.Text(),
		SelStart: start,
		SelEnd:   end,
		Caret:    ed.Caret(),
		Notice:   a.Notice(),
		Hints:    hints(a.Router()),
	}
}

func hints(r *shortcut.Router) []string {
	var out []string
	for _, cmd := range hinted {
		for _, b := range r.Bindings() {
			if b.Command == cmd {
				out = append(out, b.Label(r.Primary())+" "+b.Description)
				break
			}
		}
	}
	return out
}
