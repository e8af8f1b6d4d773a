// Package smartedit turns keystrokes into structural edits.
//
// Decide is a pure function from a keystroke and the surrounding text to an
// Action. Rules apply in priority order:
//
//  1. Skip-over: typing a closer that already sits right after the caret
//     moves over it instead of inserting.
//  2. Auto-pair: an opening bracket or quote wraps the selection in the pair.
//  3. Enter: keeps the current line's indentation, adds one level after an
//     opener, and splits "{|}" into three lines with the caret on the
//     indented middle one.
//  4. Tab: inserts the indent unit as spaces.
//
// Everything else passes through to native input. Interpreter applies
// actions through the engine so each transform is one undo step, and
// ShouldCapture tells the host when to take a pre-insertion snapshot for
// keys that pass through.
//
// The tag watcher (PendingTag and CompleteTag) closes HTML elements in the
// markup buffer after ">" is typed.
package smartedit
