package key

import "strings"

// Modifier is a set of held modifier keys.
type Modifier uint8

const (
	ModNone Modifier = 0

	ModShift Modifier = 1 << iota
	ModCtrl
	// ModAlt is Option on macOS.
	ModAlt
	// ModMeta is Cmd on macOS.
	ModMeta
)

// Has reports whether m includes mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasShift reports whether Shift is held.
func (m Modifier) HasShift() bool { return m.Has(ModShift) }

// HasAlt reports whether Alt is held.
func (m Modifier) HasAlt() bool { return m.Has(ModAlt) }

// Chord reports whether a key pressed with m belongs to the shortcut layer
// rather than to the buffer: Ctrl, Meta or Alt is held. This holds whichever
// of Ctrl and Meta is configured as primary.
func (m Modifier) Chord() bool {
	return m.Has(ModCtrl | ModMeta | ModAlt)
}

var modifierNames = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "Ctrl"},
	{ModMeta, "Cmd"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
}

// String joins the held modifiers, for example "Ctrl+Shift".
func (m Modifier) String() string {
	var parts []string
	for _, n := range modifierNames {
		if m.Has(n.mod) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "+")
}
