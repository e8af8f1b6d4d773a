// Package history provides snapshot-based undo/redo for a single text buffer.
//
// Every logical edit is recorded as a Snapshot of the buffer's full text and
// selection taken before the edit happens. Undo and redo swap whole
// snapshots between two bounded stacks, so there is no diff or patch logic
// and no cursor drift.
//
// # Stacks
//
// A History owns two stacks:
//   - past: states the buffer can be returned to with Undo
//   - future: states that were undone and can be replayed with Redo
//
// Saving a snapshot never touches future. Callers invalidate future
// explicitly for every edit that is not itself an undo or redo:
//
//	h := history.New(300)
//	h.Save(buf)           // capture the pre-edit state
//	h.InvalidateFuture()  // new forward history kills redo
//	// ... edit buf ...
//	h.Undo(buf)
//	h.Redo(buf)
//
// # Suppression
//
// Writing a snapshot back into a buffer usually fires the buffer's own
// change notification. Suppress returns a release function; while the guard
// is held, Save is a no-op, so a notification raised by the restore itself
// is never recorded as a second edit:
//
//	release := h.Suppress()
//	defer release()
//
// A History is not safe for concurrent use. It is owned by exactly one
// buffer and driven from that buffer's event loop.
package history
