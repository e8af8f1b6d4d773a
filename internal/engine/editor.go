package engine

import (
	"github.com/Sadvi2004/CodeForge/internal/engine/buffer"
	"github.com/Sadvi2004/CodeForge/internal/engine/history"
	"github.com/Sadvi2004/CodeForge/internal/event"
	"github.com/Sadvi2004/CodeForge/internal/event/events"
)

// Editor is one playground buffer with its own undo history.
type Editor struct {
	buf  *buffer.Buffer
	hist *history.History
	pub  event.Publisher

	// goalCol is the column vertical moves aim for; -1 when unset.
	goalCol int

	// Creation-time configuration.
	initContent string
	capacity    int
}

// New creates an editor for a buffer of the given kind.
func New(kind buffer.Kind, opts ...Option) *Editor {
	e := &Editor{
		capacity: DefaultHistoryCapacity,
		goalCol:  -1,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.buf = buffer.New(kind, e.initContent)
	e.hist = history.New(e.capacity)
	e.initContent = ""
	return e
}

// Kind returns the buffer kind.
func (e *Editor) Kind() buffer.Kind {
	return e.buf.Kind()
}

// Text returns the full buffer contents.
func (e *Editor) Text() string {
	return e.buf.Text()
}

// Len returns the buffer length in bytes.
func (e *Editor) Len() int {
	return e.buf.Len()
}

// Selection returns the ordered selection bounds.
func (e *Editor) Selection() (start, end int) {
	return e.buf.Selection()
}

// Caret returns the caret offset.
func (e *Editor) Caret() int {
	return e.buf.Caret()
}

// Buffer returns the underlying buffer. Writing to it directly bypasses
// history; use it for reads and layout only.
func (e *Editor) Buffer() *buffer.Buffer {
	return e.buf
}

// History returns the editor's history.
func (e *Editor) History() *history.History {
	return e.hist
}

// SaveSnapshot records the current state as an undo step. It is what the
// host calls just before native text insertion so every typed character is
// its own step. It does nothing while capture is suppressed.
func (e *Editor) SaveSnapshot() {
	e.hist.Save(e.buf)
}

// Mutate replaces [start, end) with text and leaves the caret after the
// inserted text.
func (e *Editor) Mutate(start, end int, text string) error {
	return e.MutateWithCursor(start, end, text, start+len(text))
}

// Insert replaces the selection with text as one undo step.
func (e *Editor) Insert(text string) error {
	start, end := e.buf.Selection()
	return e.Mutate(start, end, text)
}

// MutateWithCursor replaces [start, end) with text as one undo step and
// places the caret at cursor.
func (e *Editor) MutateWithCursor(start, end int, text string, cursor int) error {
	if !e.buf.ValidRange(start, end) {
		return &RangeError{Start: start, End: end, Len: e.buf.Len()}
	}

	e.hist.Save(e.buf)
	e.hist.InvalidateFuture()

	release := e.hist.Suppress()
	defer release()

	if err := e.buf.Replace(start, end, text); err != nil {
		return err
	}
	e.buf.SetCaret(cursor)
	e.goalCol = -1
	e.publishLocked(events.ReasonMutate)
	return nil
}

// Undo reverts the most recent logical edit.
// Returns ErrNothingToUndo, with no state change, when there is none.
func (e *Editor) Undo() error {
	if err := e.hist.Undo(e.buf); err != nil {
		return err
	}
	e.goalCol = -1
	e.publish(events.ReasonUndo)
	return nil
}

// Redo replays the most recently undone edit.
// Returns ErrNothingToRedo, with no state change, when there is none.
func (e *Editor) Redo() error {
	if err := e.hist.Redo(e.buf); err != nil {
		return err
	}
	e.goalCol = -1
	e.publish(events.ReasonRedo)
	return nil
}

// InsertText replaces the selection with s the way a text widget does for
// typed input: no snapshot is taken here, but redo history is dropped.
func (e *Editor) InsertText(s string) {
	start, end := e.buf.Selection()
	_ = e.buf.Replace(start, end, s)
	e.buf.SetCaret(start + len(s))
	e.inputCommitted()
}

// DeleteBackward deletes the selection, or the grapheme cluster before the
// caret. It reports whether anything was deleted.
func (e *Editor) DeleteBackward() bool {
	start, end := e.buf.Selection()
	if start == end {
		start = e.buf.PrevBoundary(end)
	}
	return e.deleteRange(start, end)
}

// DeleteForward deletes the selection, or the grapheme cluster after the
// caret. It reports whether anything was deleted.
func (e *Editor) DeleteForward() bool {
	start, end := e.buf.Selection()
	if start == end {
		end = e.buf.NextBoundary(start)
	}
	return e.deleteRange(start, end)
}

func (e *Editor) deleteRange(start, end int) bool {
	if start == end {
		return false
	}
	_ = e.buf.Replace(start, end, "")
	e.buf.SetCaret(start)
	e.inputCommitted()
	return true
}

// inputCommitted mirrors a widget's input event: new typing kills forward
// history unless the change came from a suppressed write.
func (e *Editor) inputCommitted() {
	if !e.hist.Suppressed() {
		e.hist.InvalidateFuture()
	}
	e.goalCol = -1
	e.publish(events.ReasonInput)
}

func (e *Editor) publish(reason events.ChangeReason) {
	release := e.hist.Suppress()
	defer release()
	e.publishLocked(reason)
}

// publishLocked publishes a change event. Capture must already be suppressed.
func (e *Editor) publishLocked(reason events.ChangeReason) {
	if e.pub == nil {
		return
	}
	_ = e.pub.Publish(event.NewEvent(events.TopicBufferChanged, events.BufferChanged{
		Kind:      e.buf.Kind(),
		Reason:    reason,
		UndoDepth: e.hist.UndoCount(),
		RedoDepth: e.hist.RedoCount(),
	}, "engine"))
}
