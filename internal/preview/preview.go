// Package preview renders the three playground buffers into a single
// HTML document and delivers it to a sink.
//
// The document embeds the style buffer in a <style> element in the head
// and the script buffer in a <script> element at the end of the body, so
// scripts run after the markup is parsed. Buffer contents are inserted
// verbatim; the preview is a trusted local view of the user's own code.
package preview

import (
	"errors"
	"strings"
	"sync"

	"github.com/Sadvi2004/CodeForge/internal/fileutil"
)

// ErrNoPath is returned by a FileSink with no configured path.
var ErrNoPath = errors.New("preview path not set")

// Render builds the preview document.
func Render(markup, style, script string) string {
	var b strings.Builder
	b.Grow(len(markup) + len(style) + len(script) + 96)
	b.WriteString("<!DOCTYPE html><html><head><style>")
	b.WriteString(style)
	b.WriteString("</style></head><body>")
	b.WriteString(markup)
	b.WriteString("<script>")
	b.WriteString(script)
	b.WriteString("</script></body></html>")
	return b.String()
}

// Sink receives rendered preview documents.
type Sink interface {
	Show(doc string) error
}

// FileSink writes each document to a file, replacing the previous one
// atomically so a browser reload never sees a truncated page.
type FileSink struct {
	mu   sync.Mutex
	path string
}

// NewFileSink creates a sink writing to path.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Path returns the output path.
func (s *FileSink) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// SetPath changes the output path. Used when configuration is reloaded.
func (s *FileSink) SetPath(path string) {
	s.mu.Lock()
	s.path = path
	s.mu.Unlock()
}

// Show writes doc to the sink's path.
func (s *FileSink) Show(doc string) error {
	path := s.Path()
	if path == "" {
		return ErrNoPath
	}
	return fileutil.WriteAtomic(path, []byte(doc), 0o644)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(doc string) error

// Show calls f(doc).
func (f SinkFunc) Show(doc string) error { return f(doc) }

// Discard is a Sink that drops every document.
var Discard Sink = SinkFunc(func(string) error { return nil })
