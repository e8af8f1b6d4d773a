package shortcut

// Command is an action triggered by a shortcut.
type Command uint8

// Commands.
const (
	None Command = iota
	Undo
	Redo
	NextBuffer
	PrevBuffer
	SelectAll
	Copy
	PasteClipboard
	Export
	Quit
)

var commandNames = map[Command]string{
	None:           "none",
	Undo:           "history.undo",
	Redo:           "history.redo",
	NextBuffer:     "buffer.next",
	PrevBuffer:     "buffer.prev",
	SelectAll:      "selection.all",
	Copy:           "clipboard.copy",
	PasteClipboard: "clipboard.paste",
	Export:         "project.export",
	Quit:           "app.quit",
}

// String returns the command's action name.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// IsHistory reports whether c is Undo or Redo.
func (c Command) IsHistory() bool {
	return c == Undo || c == Redo
}
