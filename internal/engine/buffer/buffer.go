package buffer

import (
	"errors"
	"strings"

	"github.com/rivo/uniseg"
)

// Errors returned by buffer operations.
var (
	ErrRangeInvalid = errors.New("invalid range")
)

// Buffer is a text document with a single selection.
// The selection is stored ordered: start <= end. When start == end the
// selection is a caret.
type Buffer struct {
	kind     Kind
	text     string
	selStart int
	selEnd   int
}

// New creates a buffer of the given kind holding text, with the caret at the end.
func New(kind Kind, text string) *Buffer {
	return &Buffer{
		kind:     kind,
		text:     text,
		selStart: len(text),
		selEnd:   len(text),
	}
}

// Kind returns the document kind.
func (b *Buffer) Kind() Kind {
	return b.kind
}

// Text returns the full contents.
func (b *Buffer) Text() string {
	return b.text
}

// Len returns the length of the contents in bytes.
func (b *Buffer) Len() int {
	return len(b.text)
}

// Selection returns the ordered selection bounds.
func (b *Buffer) Selection() (start, end int) {
	return b.selStart, b.selEnd
}

// Caret returns the caret offset, which is the end of the selection.
func (b *Buffer) Caret() int {
	return b.selEnd
}

// HasSelection returns true if the selection is a non-empty range.
func (b *Buffer) HasSelection() bool {
	return b.selStart != b.selEnd
}

// SetSelection sets the selection, clamping both ends into the text and
// ordering them.
func (b *Buffer) SetSelection(start, end int) {
	start, end = b.clamp(start), b.clamp(end)
	if start > end {
		start, end = end, start
	}
	b.selStart, b.selEnd = start, end
}

// SetCaret collapses the selection to off.
func (b *Buffer) SetCaret(off int) {
	b.SetSelection(off, off)
}

// Restore replaces the contents and selection in one step.
func (b *Buffer) Restore(text string, start, end int) {
	b.text = text
	b.SetSelection(start, end)
}

// Slice returns the text between start and end, clamped to the buffer.
func (b *Buffer) Slice(start, end int) string {
	start, end = b.clamp(start), b.clamp(end)
	if start >= end {
		return ""
	}
	return b.text[start:end]
}

// Replace replaces [start, end) with text. The selection is left for the
// caller to set.
func (b *Buffer) Replace(start, end int, text string) error {
	if !b.ValidRange(start, end) {
		return ErrRangeInvalid
	}
	b.text = b.text[:start] + text + b.text[end:]
	b.SetSelection(b.selStart, b.selEnd)
	return nil
}

// ValidRange reports whether 0 <= start <= end <= Len().
func (b *Buffer) ValidRange(start, end int) bool {
	return start >= 0 && start <= end && end <= len(b.text)
}

func (b *Buffer) clamp(off int) int {
	if off < 0 {
		return 0
	}
	if off > len(b.text) {
		return len(b.text)
	}
	return off
}

// LineStart returns the offset of the first byte of the line containing off.
func (b *Buffer) LineStart(off int) int {
	off = b.clamp(off)
	return strings.LastIndexByte(b.text[:off], '\n') + 1
}

// LineEnd returns the offset of the newline ending the line containing off,
// or Len() on the last line.
func (b *Buffer) LineEnd(off int) int {
	off = b.clamp(off)
	if i := strings.IndexByte(b.text[off:], '\n'); i >= 0 {
		return off + i
	}
	return len(b.text)
}

// NextBoundary returns the offset just past the grapheme cluster at off.
func (b *Buffer) NextBoundary(off int) int {
	off = b.clamp(off)
	if off == len(b.text) {
		return off
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(b.text[off:], -1)
	return off + len(cluster)
}

// PrevBoundary returns the offset of the grapheme cluster ending at off.
func (b *Buffer) PrevBoundary(off int) int {
	off = b.clamp(off)
	if off == 0 {
		return 0
	}

	// Clusters never span a line break other than CRLF, so scanning from
	// the line start is enough.
	start := b.LineStart(off)
	if start == off {
		if off >= 2 && b.text[off-2:off] == "\r\n" {
			return off - 2
		}
		return off - 1
	}

	prev := start
	rest := b.text[start:off]
	state := -1
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if len(rest) == 0 {
			break
		}
		prev += len(cluster)
	}
	return prev
}

// Column returns the number of grapheme clusters between the line start and off.
func (b *Buffer) Column(off int) int {
	off = b.clamp(off)
	return uniseg.GraphemeClusterCount(b.text[b.LineStart(off):off])
}

// OffsetAtColumn returns the offset col clusters into the line starting at
// lineStart, stopping at the end of the line.
func (b *Buffer) OffsetAtColumn(lineStart, col int) int {
	lineStart = b.clamp(lineStart)
	end := b.LineEnd(lineStart)
	off := lineStart
	for i := 0; i < col && off < end; i++ {
		off = b.NextBoundary(off)
	}
	if off > end {
		off = end
	}
	return off
}

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() int {
	return strings.Count(b.text, "\n") + 1
}
