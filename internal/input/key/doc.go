// Package key provides the keyboard event model shared by the terminal host,
// the shortcut router and the smart-edit interpreter.
//
// A character key is KeyRune with the character in Event.Rune; every other
// key has its own Key constant. Shift is folded into the rune for
// characters, so "A" arrives as KeyRune 'A' and Shift only matters for
// special keys and shortcuts.
package key
