package engine

import (
	"github.com/Sadvi2004/CodeForge/internal/engine/history"
	"github.com/Sadvi2004/CodeForge/internal/event"
)

// Default configuration values.
const (
	DefaultHistoryCapacity = history.DefaultCapacity
)

// Option configures an Editor during creation.
type Option func(*Editor)

// WithContent sets the initial content. The caret starts at the end.
func WithContent(content string) Option {
	return func(e *Editor) {
		e.initContent = content
	}
}

// WithHistoryCapacity sets the maximum number of undo entries.
func WithHistoryCapacity(capacity int) Option {
	return func(e *Editor) {
		if capacity > 0 {
			e.capacity = capacity
		}
	}
}

// WithPublisher sets where change events are published.
func WithPublisher(p event.Publisher) Option {
	return func(e *Editor) {
		e.pub = p
	}
}
