package history

import (
	"errors"
)

// DefaultCapacity is the number of undo entries kept when none is configured.
const DefaultCapacity = 300

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// History manages undo/redo state for a buffer.
type History struct {
	past   []Snapshot
	future []Snapshot

	// suppressed counts held guards; capture is disabled while it is non-zero.
	suppressed int

	capacity int
}

// New creates a history keeping at most capacity undo entries.
func New(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History{capacity: capacity}
}

// Save pushes the target's current state onto the undo stack.
// It does nothing while suppressed or when the text equals the most recent
// entry. The oldest entry is evicted once capacity is exceeded.
// Save never touches the redo stack.
func (h *History) Save(t Target) {
	if h.suppressed > 0 {
		return
	}
	h.push(Capture(t))
}

func (h *History) push(s Snapshot) {
	if n := len(h.past); n > 0 && h.past[n-1].Text == s.Text {
		return
	}
	h.past = append(h.past, s)
	if len(h.past) > h.capacity {
		excess := len(h.past) - h.capacity
		h.past = append(h.past[:0:0], h.past[excess:]...)
	}
}

// Commit writes s back into the target with capture suppressed.
func (h *History) Commit(t Target, s Snapshot) {
	release := h.Suppress()
	defer release()

	t.Restore(s.Text, s.SelStart, s.SelEnd)
}

// Undo reverts the most recent logical edit.
// The current state moves onto the redo stack.
func (h *History) Undo(t Target) error {
	n := len(h.past)
	if n == 0 {
		return ErrNothingToUndo
	}

	prev := h.past[n-1]
	h.past = h.past[:n-1]
	h.future = append(h.future, Capture(t))
	h.Commit(t, prev)
	return nil
}

// Redo replays the most recently undone edit.
// The current state moves back onto the undo stack.
func (h *History) Redo(t Target) error {
	n := len(h.future)
	if n == 0 {
		return ErrNothingToRedo
	}

	next := h.future[n-1]
	h.future = h.future[:n-1]
	// Undo/redo bypass the duplicate check so the two stacks stay symmetric.
	h.past = append(h.past, Capture(t))
	if len(h.past) > h.capacity {
		h.past = h.past[1:]
	}
	h.Commit(t, next)
	return nil
}

// InvalidateFuture discards all redo entries.
// Called for every edit that is not an undo or redo.
func (h *History) InvalidateFuture() {
	h.future = nil
}

// Suppress disables capture until the returned release function is called.
// Guards nest; release is idempotent.
func (h *History) Suppress() (release func()) {
	h.suppressed++
	released := false
	return func() {
		if released {
			return
		}
		released = true
		h.suppressed--
	}
}

// Suppressed reports whether capture is currently disabled.
func (h *History) Suppressed() bool {
	return h.suppressed > 0
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.past) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return len(h.future) > 0
}

// UndoCount returns the number of undo entries available.
func (h *History) UndoCount() int {
	return len(h.past)
}

// RedoCount returns the number of redo entries available.
func (h *History) RedoCount() int {
	return len(h.future)
}

// PeekUndo returns the state the next Undo would restore.
func (h *History) PeekUndo() (Snapshot, bool) {
	if len(h.past) == 0 {
		return Snapshot{}, false
	}
	return h.past[len(h.past)-1], true
}

// PeekRedo returns the state the next Redo would restore.
func (h *History) PeekRedo() (Snapshot, bool) {
	if len(h.future) == 0 {
		return Snapshot{}, false
	}
	return h.future[len(h.future)-1], true
}

// Clear removes all undo/redo history.
func (h *History) Clear() {
	h.past = nil
	h.future = nil
}

// SetCapacity changes the maximum number of undo entries.
// If the current stack is larger, oldest entries are removed.
func (h *History) SetCapacity(capacity int) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	h.capacity = capacity

	if len(h.past) > capacity {
		excess := len(h.past) - capacity
		h.past = append(h.past[:0:0], h.past[excess:]...)
	}
}

// Capacity returns the maximum number of undo entries.
func (h *History) Capacity() int {
	return h.capacity
}
