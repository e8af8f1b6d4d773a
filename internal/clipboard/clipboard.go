// Package clipboard gives the editor access to the system clipboard.
//
// The system clipboard is reached through github.com/atotto/clipboard,
// which shells out to pbcopy, xclip, xsel or wl-copy depending on the
// platform. When none is available, New falls back to an in-process
// clipboard so copy and paste still work inside the editor.
package clipboard

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrEmpty is returned by ReadAll when the clipboard holds no text.
var ErrEmpty = errors.New("clipboard is empty")

// Clipboard reads and writes text.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// System is the platform clipboard.
type System struct{}

// ReadAll returns the clipboard text.
func (System) ReadAll() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrEmpty
	}
	return text, nil
}

// WriteAll replaces the clipboard text.
func (System) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Available reports whether a system clipboard tool was found.
func Available() bool {
	return !clipboard.Unsupported
}

// Memory is a clipboard that lives only as long as the process.
type Memory struct {
	mu   sync.Mutex
	text string
}

// ReadAll returns the last text written.
func (m *Memory) ReadAll() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.text == "" {
		return "", ErrEmpty
	}
	return m.text, nil
}

// WriteAll stores text.
func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

// New returns the system clipboard when one is available, otherwise a
// Memory clipboard.
func New() Clipboard {
	if Available() {
		return System{}
	}
	return &Memory{}
}
