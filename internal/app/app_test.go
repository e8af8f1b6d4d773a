package app

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Sadvi2004/CodeForge/internal/clipboard"
	"github.com/Sadvi2004/CodeForge/internal/config"
	"github.com/Sadvi2004/CodeForge/internal/engine/buffer"
	"github.com/Sadvi2004/CodeForge/internal/event"
	"github.com/Sadvi2004/CodeForge/internal/event/events"
	"github.com/Sadvi2004/CodeForge/internal/input/key"
	"github.com/Sadvi2004/CodeForge/internal/input/shortcut"
	"github.com/Sadvi2004/CodeForge/internal/preview"
)

// memSink keeps exported archives in memory.
type memSink struct {
	saved map[string][]byte
	err   error
}

func (s *memSink) Save(name string, data []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.saved == nil {
		s.saved = make(map[string][]byte)
	}
	s.saved[name] = data
	return "mem://" + name, nil
}

type harness struct {
	app     *Application
	docs    []string
	exports *memSink
	clip    *clipboard.Memory
}

func newHarness(t *testing.T, content map[buffer.Kind]string) *harness {
	t.Helper()
	h := &harness{exports: &memSink{}, clip: &clipboard.Memory{}}
	app, err := New(Options{
		Preview: preview.SinkFunc(func(doc string) error {
			h.docs = append(h.docs, doc)
			return nil
		}),
		Export:    h.exports,
		Clipboard: h.clip,
		Content:   content,
		Now:       func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local) },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.app = app
	return h
}

func (h *harness) typeText(t *testing.T, s string) {
	t.Helper()
	for _, r := range s {
		if err := h.app.HandleKey(key.NewRuneEvent(r, key.ModNone)); err != nil {
			t.Fatalf("HandleKey(%q): %v", r, err)
		}
	}
}

func (h *harness) press(t *testing.T, ev key.Event) {
	t.Helper()
	if err := h.app.HandleKey(ev); err != nil {
		t.Fatalf("HandleKey(%s): %v", ev, err)
	}
}

var (
	ctrlZ = key.NewRuneEvent('z', key.ModCtrl)
	ctrlY = key.NewRuneEvent('y', key.ModCtrl)
)

func TestPerCharacterUndo(t *testing.T) {
	h := newHarness(t, nil)
	h.typeText(t, "ab")

	ed := h.app.Focused()
	if ed.Text() != "ab" {
		t.Fatalf("Text() = %q", ed.Text())
	}

	h.press(t, ctrlZ)
	if ed.Text() != "a" {
		t.Errorf("after first undo = %q, want %q", ed.Text(), "a")
	}
	h.press(t, ctrlZ)
	if ed.Text() != "" {
		t.Errorf("after second undo = %q, want empty", ed.Text())
	}
	h.press(t, ctrlY)
	if ed.Text() != "a" {
		t.Errorf("after redo = %q, want %q", ed.Text(), "a")
	}
}

func TestNothingToUndoNotice(t *testing.T) {
	h := newHarness(t, nil)

	h.press(t, ctrlZ)
	if got := h.app.Notice(); got.Message != MsgNothingToUndo || got.Severity != events.SeverityWarn {
		t.Errorf("Notice() = %+v, want %q", got, MsgNothingToUndo)
	}

	h.press(t, ctrlY)
	if got := h.app.Notice().Message; got != MsgNothingToRedo {
		t.Errorf("Notice() = %q, want %q", got, MsgNothingToRedo)
	}

	h.press(t, key.NewSpecialEvent(key.KeyEscape, key.ModNone))
	if got := h.app.Notice().Message; got != "" {
		t.Errorf("Notice() after Escape = %q, want empty", got)
	}
}

func TestAutoPairThroughApp(t *testing.T) {
	h := newHarness(t, nil)
	h.typeText(t, "a(")
	ed := h.app.Focused()
	if ed.Text() != "a()" || ed.Caret() != 2 {
		t.Fatalf("after '(' = %q@%d", ed.Text(), ed.Caret())
	}

	h.typeText(t, ")")
	if ed.Text() != "a()" || ed.Caret() != 3 {
		t.Errorf("after ')' = %q@%d, want skip-over", ed.Text(), ed.Caret())
	}
}

func TestSmartEnterThroughApp(t *testing.T) {
	h := newHarness(t, map[buffer.Kind]string{buffer.Markup: "{}"})
	ed := h.app.Focused()
	ed.SetCaret(1)

	h.press(t, key.NewSpecialEvent(key.KeyEnter, key.ModNone))
	if ed.Text() != "{\n  \n}" || ed.Caret() != 4 {
		t.Errorf("after Enter = %q@%d", ed.Text(), ed.Caret())
	}
}

func TestTagCompletion(t *testing.T) {
	h := newHarness(t, map[buffer.Kind]string{buffer.Markup: "<div"})
	ed := h.app.Focused()

	h.typeText(t, ">")
	if ed.Text() != "<div></div>" || ed.Caret() != 5 {
		t.Fatalf("after '>' = %q@%d, want %q@5", ed.Text(), ed.Caret(), "<div></div>")
	}

	h.press(t, ctrlZ)
	if ed.Text() != "<div>" {
		t.Errorf("first undo = %q, want %q", ed.Text(), "<div>")
	}
	h.press(t, ctrlZ)
	if ed.Text() != "<div" {
		t.Errorf("second undo = %q, want %q", ed.Text(), "<div")
	}
}

func TestTagCompletionSkipped(t *testing.T) {
	tests := []struct {
		name    string
		focus   buffer.Kind
		content string
		want    string
	}{
		{"void element", buffer.Markup, "<br", "<br>"},
		{"self closed", buffer.Markup, "<x-icon /", "<x-icon />"},
		{"style buffer", buffer.Style, "<div", "<div>"},
		{"no tag", buffer.Markup, "a", "a>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, map[buffer.Kind]string{tt.focus: tt.content})
			if err := h.app.Focus(tt.focus); err != nil {
				t.Fatal(err)
			}
			h.typeText(t, ">")
			if got := h.app.Focused().Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTagCompletionNoDoubleInsert(t *testing.T) {
	h := newHarness(t, map[buffer.Kind]string{buffer.Markup: "<p</p>"})
	ed := h.app.Focused()
	ed.SetCaret(2)

	h.typeText(t, ">")
	if ed.Text() != "<p></p>" {
		t.Errorf("Text() = %q, want %q", ed.Text(), "<p></p>")
	}
}

func TestFocusCycling(t *testing.T) {
	h := newHarness(t, nil)

	var focused []buffer.Kind
	if _, err := h.app.Bus().SubscribeFunc(events.TopicBufferFocused, func(ev any) error {
		focused = append(focused, ev.(event.Event[events.BufferFocused]).Payload.Kind)
		return nil
	}); err != nil {
		t.Fatal(err)
	}

	steps := []struct {
		ev   key.Event
		want buffer.Kind
	}{
		{key.NewRuneEvent('n', key.ModCtrl), buffer.Style},
		{key.NewRuneEvent('n', key.ModCtrl), buffer.Script},
		{key.NewRuneEvent('n', key.ModCtrl), buffer.Markup},
		{key.NewRuneEvent('p', key.ModCtrl), buffer.Script},
	}
	for _, s := range steps {
		h.press(t, s.ev)
		if h.app.FocusedKind() != s.want {
			t.Errorf("after %s focus = %v, want %v", s.ev, h.app.FocusedKind(), s.want)
		}
	}

	if len(focused) != len(steps) {
		t.Errorf("buffer.focused published %d times, want %d", len(focused), len(steps))
	}
	if err := h.app.Focus(buffer.Kind(9)); !errors.Is(err, ErrUnknownBuffer) {
		t.Errorf("Focus(9) = %v, want ErrUnknownBuffer", err)
	}
}

func TestHistoryIsPerBuffer(t *testing.T) {
	h := newHarness(t, nil)
	h.typeText(t, "x")
	h.press(t, key.NewRuneEvent('n', key.ModCtrl))

	h.press(t, ctrlZ)
	if got := h.app.Notice().Message; got != MsgNothingToUndo {
		t.Errorf("undo in fresh buffer: notice = %q", got)
	}
	if got := h.app.Editor(buffer.Markup).Text(); got != "x" {
		t.Errorf("markup = %q, want untouched %q", got, "x")
	}
}

func TestPreviewOnChange(t *testing.T) {
	h := newHarness(t, map[buffer.Kind]string{
		buffer.Style:  "p{}",
		buffer.Script: "go()",
	})
	h.typeText(t, "h")

	if len(h.docs) != 1 {
		t.Fatalf("preview rendered %d times, want 1", len(h.docs))
	}
	want := preview.Render("h", "p{}", "go()")
	if h.docs[0] != want {
		t.Errorf("preview = %q, want %q", h.docs[0], want)
	}

	// Caret movement does not render.
	h.press(t, key.NewSpecialEvent(key.KeyLeft, key.ModNone))
	if len(h.docs) != 1 {
		t.Errorf("preview rendered on navigation")
	}

	h.press(t, ctrlZ)
	if len(h.docs) != 2 {
		t.Errorf("preview not rendered on undo")
	}
}

func TestPreviewDisabled(t *testing.T) {
	h := newHarness(t, nil)
	cfg := config.Default()
	cfg.Preview.Enabled = false
	if err := h.app.ApplyConfig(cfg); err != nil {
		t.Fatal(err)
	}
	h.typeText(t, "x")
	if len(h.docs) != 0 {
		t.Errorf("preview rendered while disabled")
	}
}

func TestExportRefusedWhenBlank(t *testing.T) {
	h := newHarness(t, map[buffer.Kind]string{buffer.Markup: "  \n"})

	h.press(t, key.NewRuneEvent('s', key.ModCtrl))
	if got := h.app.Notice().Message; got != MsgNothingToExport {
		t.Errorf("Notice() = %q, want %q", got, MsgNothingToExport)
	}
	if len(h.exports.saved) != 0 {
		t.Errorf("archive saved despite refusal")
	}
}

func TestExport(t *testing.T) {
	h := newHarness(t, map[buffer.Kind]string{buffer.Markup: "<h1>Hi</h1>"})

	var completed []events.ExportCompleted
	if _, err := h.app.Bus().SubscribeFunc(events.TopicExportCompleted, func(ev any) error {
		completed = append(completed, ev.(event.Event[events.ExportCompleted]).Payload)
		return nil
	}); err != nil {
		t.Fatal(err)
	}

	h.press(t, key.NewRuneEvent('s', key.ModCtrl))
	if got := h.app.Notice().Message; got != MsgExported {
		t.Fatalf("Notice() = %q, want %q", got, MsgExported)
	}

	data := h.exports.saved["codeforge-project.zip"]
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader: %v", err)
	}
	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	if got := strings.Join(names, ","); got != "index.html,style.css,script.js" {
		t.Errorf("entries = %s", got)
	}
	if len(completed) != 1 || completed[0].Entries != 3 {
		t.Errorf("export.completed = %+v, want one event with 3 entries", completed)
	}
}

func TestExportSinkFailure(t *testing.T) {
	h := newHarness(t, map[buffer.Kind]string{buffer.Script: "x"})
	h.exports.err = errors.New("read-only")

	_, err := h.app.ExportProject()
	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Op != "export" {
		t.Fatalf("ExportProject() = %v, want *OperationError", err)
	}
	if got := h.app.Notice(); got.Severity != events.SeverityError {
		t.Errorf("Notice() = %+v, want error severity", got)
	}
}

func TestQuit(t *testing.T) {
	h := newHarness(t, nil)
	if err := h.app.HandleKey(key.NewRuneEvent('q', key.ModCtrl)); !errors.Is(err, ErrQuit) {
		t.Errorf("HandleKey(Ctrl+q) = %v, want ErrQuit", err)
	}
}

func TestRunSelectAllAndPaste(t *testing.T) {
	h := newHarness(t, map[buffer.Kind]string{buffer.Markup: "old"})
	if err := h.app.Run(shortcut.SelectAll); err != nil {
		t.Fatal(err)
	}
	if err := h.app.Paste("new"); err != nil {
		t.Fatal(err)
	}
	ed := h.app.Focused()
	if ed.Text() != "new" {
		t.Errorf("Text() = %q, want %q", ed.Text(), "new")
	}
	h.press(t, ctrlZ)
	if ed.Text() != "old" {
		t.Errorf("undo paste = %q, want %q", ed.Text(), "old")
	}
}

type brokenClipboard struct{}

func (brokenClipboard) ReadAll() (string, error) { return "", errors.New("no display") }
func (brokenClipboard) WriteAll(string) error    { return errors.New("no display") }

func TestCopy(t *testing.T) {
	h := newHarness(t, map[buffer.Kind]string{buffer.Markup: "<p>hi</p>"})

	h.press(t, key.NewRuneEvent('c', key.ModCtrl))
	if got, _ := h.clip.ReadAll(); got != "<p>hi</p>" {
		t.Errorf("clipboard = %q, want whole buffer", got)
	}
	if got := h.app.Notice().Message; got != MsgCopied {
		t.Errorf("Notice() = %q", got)
	}

	h.app.Focused().SetSelection(3, 5)
	h.press(t, key.NewRuneEvent('c', key.ModCtrl))
	if got, _ := h.clip.ReadAll(); got != "hi" {
		t.Errorf("clipboard = %q, want selection", got)
	}
	if got := h.app.Focused().Text(); got != "<p>hi</p>" {
		t.Errorf("copy changed the buffer: %q", got)
	}
}

func TestCopyRefusesBlank(t *testing.T) {
	h := newHarness(t, map[buffer.Kind]string{buffer.Markup: "  \n\t"})
	h.press(t, key.NewRuneEvent('c', key.ModCtrl))

	if got := h.app.Notice().Message; got != MsgNothingToCopy {
		t.Errorf("Notice() = %q, want %q", got, MsgNothingToCopy)
	}
	if _, err := h.clip.ReadAll(); !errors.Is(err, clipboard.ErrEmpty) {
		t.Error("blank text reached the clipboard")
	}
}

func TestCopyFailure(t *testing.T) {
	app, err := New(Options{
		Preview:   preview.Discard,
		Export:    &memSink{},
		Clipboard: brokenClipboard{},
		Content:   map[buffer.Kind]string{buffer.Markup: "x"},
	})
	if err != nil {
		t.Fatal(err)
	}
	app.Copy()
	if n := app.Notice(); n.Message != MsgCopyFailed || n.Severity != events.SeverityError {
		t.Errorf("Notice() = %+v", n)
	}
	if err := app.PasteClipboard(); err == nil {
		t.Error("PasteClipboard with a broken clipboard should fail")
	}
}

func TestPasteClipboard(t *testing.T) {
	h := newHarness(t, nil)

	h.press(t, key.NewRuneEvent('v', key.ModCtrl))
	if got := h.app.Notice().Message; got != MsgClipboardEmpty {
		t.Errorf("Notice() = %q, want %q", got, MsgClipboardEmpty)
	}

	_ = h.clip.WriteAll("<div></div>")
	h.press(t, key.NewRuneEvent('v', key.ModCtrl))
	if got := h.app.Focused().Text(); got != "<div></div>" {
		t.Fatalf("Text() = %q", got)
	}
	h.press(t, ctrlZ)
	if got := h.app.Focused().Text(); got != "" {
		t.Errorf("undo paste = %q, want empty", got)
	}
}

func TestPrimaryModifierChordsDoNotType(t *testing.T) {
	h := newHarness(t, nil)
	h.press(t, key.NewRuneEvent('k', key.ModCtrl))
	h.press(t, key.NewRuneEvent('k', key.ModAlt))
	if got := h.app.Focused().Text(); got != "" {
		t.Errorf("Text() = %q, want empty", got)
	}
}

func TestTabAndEnterGoThroughSmartEdit(t *testing.T) {
	h := newHarness(t, nil)
	h.app.Focus(buffer.Style)

	h.press(t, key.NewSpecialEvent(key.KeyTab, key.ModNone))
	h.press(t, key.NewSpecialEvent(key.KeyTab, key.ModShift))
	h.press(t, key.NewSpecialEvent(key.KeyEnter, key.ModNone))
	if got := h.app.Focused().Text(); strings.Contains(got, "\t") || !strings.HasPrefix(got, "    ") {
		t.Errorf("Text() = %q, want spaces and no tab character", got)
	}

	h.press(t, key.NewSpecialEvent(key.KeyTab, key.ModAlt))
	h.press(t, key.NewSpecialEvent(key.KeyEnter, key.ModCtrl))
	if got := h.app.Focused().Text(); strings.Count(got, "\n") != 1 {
		t.Errorf("modified Tab or Enter reached the buffer: %q", got)
	}
}

func TestApplyConfig(t *testing.T) {
	h := newHarness(t, map[buffer.Kind]string{buffer.Script: "x"})
	h.app.Focus(buffer.Script)

	cfg := config.Default()
	cfg.Editor.IndentWidth = 4
	cfg.Editor.PrimaryModifier = "meta"
	cfg.History.Capacity = 2
	if err := h.app.Reload(cfg); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	h.press(t, key.NewSpecialEvent(key.KeyTab, key.ModNone))
	if got := h.app.Focused().Text(); got != "x    " {
		t.Errorf("Tab with width 4 = %q", got)
	}

	// Meta is now primary, so Ctrl chords type nothing and Meta+z undoes.
	undos := h.app.Focused().History().UndoCount()
	h.press(t, key.NewRuneEvent('z', key.ModCtrl))
	h.press(t, key.NewRuneEvent('s', key.ModCtrl))
	if got := h.app.Focused().Text(); got != "x    " {
		t.Errorf("Ctrl chords with Meta primary typed into the buffer: %q", got)
	}
	if got := h.app.Focused().History().UndoCount(); got != undos {
		t.Errorf("UndoCount() = %d after Ctrl chords, want %d", got, undos)
	}
	h.press(t, key.NewRuneEvent('z', key.ModMeta))
	if got := h.app.Focused().Text(); got != "x" {
		t.Errorf("Meta+z undo = %q, want %q", got, "x")
	}
	if got := h.app.Focused().History().Capacity(); got != 2 {
		t.Errorf("Capacity() = %d, want 2", got)
	}
	if got := h.app.Notice().Message; got != MsgConfigReloaded {
		t.Errorf("Notice() = %q", got)
	}

	bad := config.Default()
	bad.History.Capacity = -1
	if err := h.app.Reload(bad); err == nil {
		t.Error("Reload(invalid) should fail")
	}
	if got := h.app.Focused().History().Capacity(); got != 2 {
		t.Errorf("invalid config was applied: capacity %d", got)
	}
}
