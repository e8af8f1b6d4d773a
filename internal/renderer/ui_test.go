package renderer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Sadvi2004/CodeForge/internal/app"
	"github.com/Sadvi2004/CodeForge/internal/clipboard"
	"github.com/Sadvi2004/CodeForge/internal/config"
	"github.com/Sadvi2004/CodeForge/internal/event/events"
	"github.com/Sadvi2004/CodeForge/internal/input/key"
	"github.com/Sadvi2004/CodeForge/internal/preview"
	"github.com/Sadvi2004/CodeForge/internal/renderer/backend"
)

type nopExport struct{}

func (nopExport) Save(name string, _ []byte) (string, error) { return name, nil }

func newTestUI(t *testing.T) (*UI, *app.Application, tcell.SimulationScreen) {
	t.Helper()
	a, err := app.New(app.Options{
		Preview:   preview.Discard,
		Export:    nopExport{},
		Clipboard: &clipboard.Memory{},
	})
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}

	sim := tcell.NewSimulationScreen("UTF-8")
	term := backendFor(t, sim)
	ui, err := NewUI(a, term)
	if err != nil {
		t.Fatalf("NewUI: %v", err)
	}
	return ui, a, sim
}

func backendFor(t *testing.T, sim tcell.SimulationScreen) *backend.Terminal {
	t.Helper()
	term := backend.New(sim)
	if err := term.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	sim.SetSize(40, 8)
	t.Cleanup(term.Shutdown)
	return term
}

func start(ctx context.Context, ui *UI) <-chan error {
	errc := make(chan error, 1)
	go func() { errc <- ui.Run(ctx) }()
	return errc
}

func wait(t *testing.T, errc <-chan error) error {
	t.Helper()
	select {
	case err := <-errc:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("event loop did not exit")
		return nil
	}
}

func quit(sim tcell.SimulationScreen) {
	sim.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
}

func TestUITypingAndQuit(t *testing.T) {
	ui, a, sim := newTestUI(t)
	errc := start(context.Background(), ui)

	sim.InjectKey(tcell.KeyRune, 'h', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'i', tcell.ModNone)
	quit(sim)

	if err := wait(t, errc); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := a.Focused().Text(); got != "hi" {
		t.Errorf("text = %q, want hi", got)
	}

	cells, w, _ := sim.GetContents()
	row := cells[w : 2*w]
	if len(row[0].Runes) == 0 || row[0].Runes[0] != 'h' || row[1].Runes[0] != 'i' {
		t.Error("typed text not drawn on the first body row")
	}
}

func TestUIPasteIsOneUndoStep(t *testing.T) {
	ui, a, sim := newTestUI(t)
	errc := start(context.Background(), ui)

	_ = sim.PostEvent(tcell.NewEventPaste(true))
	sim.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'b', tcell.ModNone)
	_ = sim.PostEvent(tcell.NewEventPaste(false))
	quit(sim)

	if err := wait(t, errc); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := a.Focused().Text(); got != "ab" {
		t.Fatalf("text = %q, want ab", got)
	}
	if err := a.HandleKey(key.NewRuneEvent('z', key.ModCtrl)); err != nil {
		t.Fatal(err)
	}
	if got := a.Focused().Text(); got != "" {
		t.Errorf("after undo text = %q, want empty", got)
	}
}

func TestUIReload(t *testing.T) {
	ui, a, sim := newTestUI(t)
	errc := start(context.Background(), ui)

	cfg := config.Default()
	cfg.Theme.Accent = "#22c55e"
	cfg.Editor.IndentWidth = 4
	ui.PostReload(cfg, nil)
	quit(sim)

	if err := wait(t, errc); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if a.Config() != cfg {
		t.Error("config not applied")
	}
	if got := a.Notice().Message; got != app.MsgConfigReloaded {
		t.Errorf("notice = %q", got)
	}
	if got := ui.Renderer().theme.TabActive.Foreground.Hex(); got != "#22c55e" {
		t.Errorf("accent = %s, want #22c55e", got)
	}
}

func TestUIReloadError(t *testing.T) {
	ui, a, sim := newTestUI(t)
	errc := start(context.Background(), ui)

	ui.PostReload(nil, errors.New("bad toml"))
	quit(sim)

	if err := wait(t, errc); err != nil {
		t.Fatalf("Run: %v", err)
	}
	n := a.Notice()
	if n.Severity != events.SeverityError || !strings.Contains(n.Message, "bad toml") {
		t.Errorf("notice = %+v", n)
	}
}

func TestUIContextCancel(t *testing.T) {
	ui, _, _ := newTestUI(t)
	ctx, cancel := context.WithCancel(context.Background())
	errc := start(ctx, ui)

	cancel()
	if err := wait(t, errc); !errors.Is(err, context.Canceled) {
		t.Errorf("Run = %v, want context.Canceled", err)
	}
}

func TestUIReportsPanics(t *testing.T) {
	ui, a, _ := newTestUI(t)

	ui.report(app.NewRecoveredPanicError("boom", "stack"))
	n := a.Notice()
	if n.Message != "Internal error: boom" || n.Severity != events.SeverityError {
		t.Errorf("notice = %+v", n)
	}
	if strings.Contains(n.Message, "stack") {
		t.Error("stack leaked into the notice")
	}
}

func TestHints(t *testing.T) {
	ui, _, _ := newTestUI(t)
	got := strings.Join(ui.View().Hints, "|")
	want := "Ctrl+N Next buffer|Ctrl+S Export ZIP|Ctrl+Q Quit"
	if got != want {
		t.Errorf("hints = %q, want %q", got, want)
	}
}
