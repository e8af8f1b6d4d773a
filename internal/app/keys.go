package app

import (
	"errors"
	"strings"

	"github.com/Sadvi2004/CodeForge/internal/clipboard"
	"github.com/Sadvi2004/CodeForge/internal/engine"
	"github.com/Sadvi2004/CodeForge/internal/engine/buffer"
	"github.com/Sadvi2004/CodeForge/internal/event/events"
	"github.com/Sadvi2004/CodeForge/internal/input/key"
	"github.com/Sadvi2004/CodeForge/internal/input/shortcut"
	"github.com/Sadvi2004/CodeForge/internal/smartedit"
)

// HandleKey processes one key press against the focused buffer.
// Returns ErrQuit if the application should exit.
//
// The pipeline is:
//  1. global shortcuts (undo, redo, focus, export, quit)
//  2. the pre-insertion snapshot for plain typing
//  3. smart-edit rules, which go through the mutation engine
//  4. native input for everything the rules pass on
//  5. closing-tag completion after ">" in the markup buffer
func (app *Application) HandleKey(ev key.Event) error {
	if cmd := app.router.Route(ev); cmd != shortcut.None {
		return app.Run(cmd)
	}

	ed := app.Focused()

	if app.interp.ShouldCapture(ev) {
		ed.SaveSnapshot()
	}

	// The tag is read before ">" lands, as the text before the caret is
	// what decides whether a closing tag is owed.
	var pendingTag string
	if ed.Kind() == buffer.Markup && ev.Is('>') {
		start, _ := ed.Selection()
		pendingTag, _ = smartedit.PendingTag(ed.Text()[:start])
	}

	handled, err := app.interp.Handle(ed, ev)
	if err != nil {
		return NewOperationError("edit", ed.Kind().String(), err).OnKey(ev)
	}
	if handled {
		return nil
	}

	inserted := app.nativeInput(ed, ev)

	if inserted && pendingTag != "" {
		if _, err := smartedit.CompleteTag(ed, pendingTag); err != nil {
			return NewOperationError("complete tag", pendingTag, err)
		}
	}
	return nil
}

// nativeInput applies ev the way a plain text widget would. It reports
// whether text was inserted.
func (app *Application) nativeInput(ed *engine.Editor, ev key.Event) bool {
	if ev.Modifiers.Chord() {
		return false
	}

	if ev.IsChar() {
		ed.InsertText(ev.Text())
		return true
	}

	switch ev.Key {
	case key.KeyBackspace:
		ed.DeleteBackward()
	case key.KeyDelete:
		ed.DeleteForward()
	case key.KeyLeft:
		ed.MoveLeft()
	case key.KeyRight:
		ed.MoveRight()
	case key.KeyUp:
		ed.MoveUp()
	case key.KeyDown:
		ed.MoveDown()
	case key.KeyHome:
		ed.MoveHome()
	case key.KeyEnd:
		ed.MoveEnd()
	case key.KeyPageUp:
		for i := 0; i < pageLines; i++ {
			ed.MoveUp()
		}
	case key.KeyPageDown:
		for i := 0; i < pageLines; i++ {
			ed.MoveDown()
		}
	case key.KeyEscape:
		ed.SetCaret(ed.Caret())
		app.ClearNotice()
	}
	return false
}

// pageLines is how far PageUp and PageDown move the caret.
const pageLines = 10

// Run executes a shortcut command.
// Returns ErrQuit for shortcut.Quit.
func (app *Application) Run(cmd shortcut.Command) error {
	app.logger.Debug("command %s", cmd)

	ed := app.Focused()
	switch cmd {
	case shortcut.Undo:
		if err := ed.Undo(); err != nil {
			if errors.Is(err, engine.ErrNothingToUndo) {
				app.Notify(MsgNothingToUndo, events.SeverityWarn)
				return nil
			}
			return err
		}
	case shortcut.Redo:
		if err := ed.Redo(); err != nil {
			if errors.Is(err, engine.ErrNothingToRedo) {
				app.Notify(MsgNothingToRedo, events.SeverityWarn)
				return nil
			}
			return err
		}
	case shortcut.NextBuffer:
		app.FocusNext()
	case shortcut.PrevBuffer:
		app.FocusPrev()
	case shortcut.SelectAll:
		ed.SelectAll()
	case shortcut.Copy:
		app.Copy()
	case shortcut.PasteClipboard:
		return app.PasteClipboard()
	case shortcut.Export:
		app.ExportProject()
	case shortcut.Quit:
		return ErrQuit
	}
	return nil
}

// Paste inserts text at the focused buffer's selection as one undo step.
func (app *Application) Paste(text string) error {
	if text == "" {
		return nil
	}
	ed := app.Focused()
	if err := ed.Insert(text); err != nil {
		return NewOperationError("paste", ed.Kind().String(), err)
	}
	return nil
}

// Copy puts the focused buffer's selection on the clipboard, or the whole
// buffer when nothing is selected. Blank text is refused with a notice.
func (app *Application) Copy() {
	ed := app.Focused()
	text := ed.Text()
	if start, end := ed.Selection(); start != end {
		text = text[start:end]
	}
	if strings.TrimSpace(text) == "" {
		app.Notify(MsgNothingToCopy, events.SeverityWarn)
		return
	}
	if err := app.clipboard.WriteAll(text); err != nil {
		app.logger.Warn("copy: %v", err)
		app.Notify(MsgCopyFailed, events.SeverityError)
		return
	}
	app.Notify(MsgCopied, events.SeverityInfo)
}

// PasteClipboard pastes the clipboard text into the focused buffer.
func (app *Application) PasteClipboard() error {
	text, err := app.clipboard.ReadAll()
	if err != nil {
		if errors.Is(err, clipboard.ErrEmpty) {
			app.Notify(MsgClipboardEmpty, events.SeverityWarn)
			return nil
		}
		return NewOperationError("paste", "clipboard", err)
	}
	return app.Paste(text)
}
