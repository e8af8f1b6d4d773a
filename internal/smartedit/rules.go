package smartedit

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Sadvi2004/CodeForge/internal/input/key"
)

// DefaultIndent is the indent unit inserted by Tab and smart Enter.
const DefaultIndent = "  "

// ActionKind identifies what an Action does.
type ActionKind uint8

const (
	// ActionPass leaves the key to native input.
	ActionPass ActionKind = iota
	// ActionMoveCaret moves the caret without editing.
	ActionMoveCaret
	// ActionReplace replaces [Start, End) with Text and puts the caret at Caret.
	ActionReplace
)

// Action is the outcome of Decide.
type Action struct {
	Kind  ActionKind
	Start int
	End   int
	Text  string
	Caret int
}

// pairs maps openers to the closer auto-pairing inserts.
var pairs = map[rune]rune{
	'(':  ')',
	'[':  ']',
	'{':  '}',
	'"':  '"',
	'\'': '\'',
	'`':  '`',
}

// closers are the characters skip-over applies to.
var closers = map[rune]bool{
	')':  true,
	']':  true,
	'}':  true,
	'"':  true,
	'\'': true,
	'`':  true,
}

// blockOpeners are the brackets smart Enter indents after.
var blockOpeners = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
}

// Decide chooses the transform for ev given the selection [start, end) in
// text. indent is the unit inserted by Tab and added after openers; an
// empty indent means DefaultIndent. Keys pressed with the primary modifier
// always pass.
func Decide(ev key.Event, primaryHeld bool, start, end int, text string, indent string) Action {
	if primaryHeld {
		return Action{Kind: ActionPass}
	}
	if indent == "" {
		indent = DefaultIndent
	}

	switch {
	case ev.IsRune():
		r := ev.Rune
		s := string(r)

		if closers[r] && start == end && strings.HasPrefix(text[start:], s) {
			return Action{Kind: ActionMoveCaret, Caret: start + len(s)}
		}

		if closer, ok := pairs[r]; ok {
			return Action{
				Kind:  ActionReplace,
				Start: start,
				End:   end,
				Text:  s + text[start:end] + string(closer),
				Caret: start + len(s),
			}
		}

	case ev.Key == key.KeyEnter:
		return enter(start, end, text, indent)

	case ev.Key == key.KeyTab:
		return Action{
			Kind:  ActionReplace,
			Start: start,
			End:   end,
			Text:  indent,
			Caret: start + len(indent),
		}
	}

	return Action{Kind: ActionPass}
}

func enter(start, end int, text, indent string) Action {
	before := text[:start]
	line := before[strings.LastIndexByte(before, '\n')+1:]
	base := line[:len(line)-len(strings.TrimLeftFunc(line, unicode.IsSpace))]

	last, _ := utf8.DecodeLastRuneInString(strings.TrimRightFunc(line, unicode.IsSpace))
	next, _ := utf8.DecodeRuneInString(text[end:])
	closer, opener := blockOpeners[last]

	if opener && next == closer {
		inner := base + indent
		return Action{
			Kind:  ActionReplace,
			Start: start,
			End:   end,
			Text:  "\n" + inner + "\n" + base,
			Caret: start + 1 + len(inner),
		}
	}

	nl := "\n" + base
	if opener {
		nl += indent
	}
	return Action{
		Kind:  ActionReplace,
		Start: start,
		End:   end,
		Text:  nl,
		Caret: start + len(nl),
	}
}
