package shortcut

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Sadvi2004/CodeForge/internal/input/key"
)

// Binding maps a primary-modified letter to a command.
type Binding struct {
	// Letter is the lowercase letter of the chord.
	Letter rune

	// Shift must match the event's Shift state exactly.
	Shift bool

	Command     Command
	Description string
}

// DefaultBindings is the shortcut table.
var DefaultBindings = []Binding{
	{Letter: 'z', Command: Undo, Description: "Undo"},
	{Letter: 'z', Shift: true, Command: Redo, Description: "Redo"},
	{Letter: 'y', Command: Redo, Description: "Redo"},
	{Letter: 'n', Command: NextBuffer, Description: "Next buffer"},
	{Letter: 'p', Command: PrevBuffer, Description: "Previous buffer"},
	{Letter: 'a', Command: SelectAll, Description: "Select all"},
	{Letter: 'c', Command: Copy, Description: "Copy"},
	{Letter: 'v', Command: PasteClipboard, Description: "Paste"},
	{Letter: 's', Command: Export, Description: "Export ZIP"},
	{Letter: 'q', Command: Quit, Description: "Quit"},
}

// Router resolves key events to commands.
type Router struct {
	primary  key.Modifier
	bindings []Binding
}

// NewRouter creates a router for the given primary modifier with the
// default bindings.
func NewRouter(primary key.Modifier) *Router {
	return &Router{primary: primary, bindings: DefaultBindings}
}

// Primary returns the primary modifier.
func (r *Router) Primary() key.Modifier {
	return r.primary
}

// SetPrimary changes the primary modifier.
func (r *Router) SetPrimary(m key.Modifier) {
	r.primary = m
}

// Bindings returns the active bindings.
func (r *Router) Bindings() []Binding {
	return r.bindings
}

// Route returns the command bound to ev, or None.
func (r *Router) Route(ev key.Event) Command {
	return route(r.bindings, ev, r.primary)
}

// Route resolves ev against the default bindings.
func Route(ev key.Event, primary key.Modifier) Command {
	return route(DefaultBindings, ev, primary)
}

func route(bindings []Binding, ev key.Event, primary key.Modifier) Command {
	if !ev.IsRune() || !ev.Modifiers.Has(primary) || ev.Modifiers.HasAlt() {
		return None
	}

	// An uppercase letter implies Shift even when the terminal did not
	// report the modifier.
	letter := ev.Rune
	shift := ev.Modifiers.HasShift()
	if unicode.IsUpper(letter) {
		shift = true
		letter = unicode.ToLower(letter)
	}

	for _, b := range bindings {
		if b.Letter == letter && b.Shift == shift {
			return b.Command
		}
	}
	return None
}

// Label formats a binding for display, for example "Ctrl+Shift+Z".
func (b Binding) Label(primary key.Modifier) string {
	mods := primary
	if b.Shift {
		mods |= key.ModShift
	}
	return fmt.Sprintf("%s+%s", mods.String(), strings.ToUpper(string(b.Letter)))
}

// ParsePrimary parses a primary modifier name. "ctrl" and "meta" (also
// "cmd" and "command") are accepted.
func ParsePrimary(name string) (key.Modifier, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ctrl", "control":
		return key.ModCtrl, nil
	case "meta", "cmd", "command", "super":
		return key.ModMeta, nil
	default:
		return key.ModNone, fmt.Errorf("unknown primary modifier %q", name)
	}
}
