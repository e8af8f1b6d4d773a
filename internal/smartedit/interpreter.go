package smartedit

import (
	"strings"

	"github.com/Sadvi2004/CodeForge/internal/input/key"
)

// Editor is the part of engine.Editor the interpreter drives.
type Editor interface {
	Text() string
	Selection() (start, end int)
	Caret() int
	SetCaret(off int)
	MutateWithCursor(start, end int, text string, cursor int) error
}

// Interpreter applies smart-edit rules to an editor.
type Interpreter struct {
	// Indent is the unit inserted by Tab and smart Enter.
	Indent string

	// Primary is the platform accelerator modifier (Ctrl, or Meta on macOS).
	// Keys held with it are never intercepted.
	Primary key.Modifier
}

// NewInterpreter creates an interpreter with the default indent and Ctrl
// as the primary modifier.
func NewInterpreter() *Interpreter {
	return &Interpreter{Indent: DefaultIndent, Primary: key.ModCtrl}
}

// Decide returns the action for ev against ed's current state.
func (in *Interpreter) Decide(ev key.Event, ed Editor) Action {
	start, end := ed.Selection()
	held := ev.Modifiers.Has(in.Primary) || ev.Modifiers.Chord()
	return Decide(ev, held, start, end, ed.Text(), in.Indent)
}

// Handle applies the rule matching ev, if any. It reports false when ev
// should go to native input.
func (in *Interpreter) Handle(ed Editor, ev key.Event) (bool, error) {
	act := in.Decide(ev, ed)
	switch act.Kind {
	case ActionMoveCaret:
		ed.SetCaret(act.Caret)
		return true, nil
	case ActionReplace:
		if err := ed.MutateWithCursor(act.Start, act.End, act.Text, act.Caret); err != nil {
			return true, err
		}
		return true, nil
	default:
		return false, nil
	}
}

// ShouldCapture reports whether ev needs a pre-insertion snapshot.
func (in *Interpreter) ShouldCapture(ev key.Event) bool {
	return ShouldCapture(ev, in.Primary)
}

// CompleteTag inserts the closing tag for tag right after the caret, as its
// own undo step, leaving the caret where it is. It does nothing when the
// closing tag is already there.
func CompleteTag(ed Editor, tag string) (bool, error) {
	closing := ClosingTag(tag)
	caret := ed.Caret()
	if strings.HasPrefix(ed.Text()[caret:], closing) {
		return false, nil
	}
	if err := ed.MutateWithCursor(caret, caret, closing, caret); err != nil {
		return false, err
	}
	return true, nil
}
