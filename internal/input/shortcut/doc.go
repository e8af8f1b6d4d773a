// Package shortcut routes global key chords to editor commands.
//
// Chords are built from the primary modifier, which is Ctrl on most
// platforms and Meta (Command) on macOS. The router recognizes:
//
//	Primary+Z        undo
//	Primary+Shift+Z  redo
//	Primary+Y        redo
//	Primary+N        focus next buffer
//	Primary+P        focus previous buffer
//	Primary+A        select all
//	Primary+C        copy selection, or the whole buffer, to the clipboard
//	Primary+V        paste from the system clipboard
//	Primary+S        export project archive
//	Primary+Q        quit
//
// Everything else routes to None and is left to the smart-edit rules and
// native input.
package shortcut
