// Package backend provides the terminal abstraction the renderer draws on.
package backend

import "github.com/Sadvi2004/CodeForge/internal/input/key"

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventPaste
	EventInterrupt
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Width and Height are set for EventResize.
	Width, Height int

	// PasteText holds the full text of a bracketed paste.
	PasteText string

	// Data carries the payload of an EventInterrupt.
	Data any
}
