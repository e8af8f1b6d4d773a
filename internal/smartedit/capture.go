package smartedit

import (
	"strings"

	"github.com/Sadvi2004/CodeForge/internal/input/key"
)

// noCapture lists characters whose keystrokes never take a pre-insertion
// snapshot. Openers and quotes already capture inside Mutate.
const noCapture = "([{'\"`."

// ShouldCapture reports whether the host should save a snapshot before
// letting ev reach native input. It is true only for printable characters,
// Backspace and Delete typed without Ctrl, Meta or Alt, and never
// for keys the smart-edit rules handle themselves.
func ShouldCapture(ev key.Event, primary key.Modifier) bool {
	if ev.Modifiers.Has(primary) || ev.Modifiers.Chord() {
		return false
	}

	printable := ev.IsRune()
	deleting := ev.Key == key.KeyBackspace || ev.Key == key.KeyDelete
	if !printable && !deleting {
		return false
	}
	if printable && strings.ContainsRune(noCapture, ev.Rune) {
		return false
	}
	return true
}
