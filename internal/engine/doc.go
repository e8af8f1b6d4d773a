// Package engine provides the mutation engine for playground buffers.
//
// An Editor couples one buffer.Buffer with its own history.History and
// routes every change through a single protocol:
//
//   - Mutate: programmatic replacements (smart editing, tag completion,
//     paste). The pre-mutation state is saved, redo history is dropped, and
//     the write happens with capture suppressed, so each call is exactly one
//     undo step.
//   - InsertText / DeleteBackward / DeleteForward: the native input path a
//     text widget takes for ordinary typing. It never captures on its own;
//     the host captures the pre-insertion state with SaveSnapshot first.
//   - Undo / Redo: swap whole snapshots.
//
// Every committed change publishes one events.TopicBufferChanged event.
// Delivery happens synchronously while capture is suppressed, so a
// subscriber that calls back into SaveSnapshot cannot record the change a
// second time.
//
// # Basic Usage
//
//	ed := engine.New(buffer.Markup, engine.WithContent("ab"))
//	ed.SetCaret(1)
//	ed.MutateWithCursor(1, 1, "()", 2) // "a()b", caret inside the parens
//	ed.Undo()                          // "ab"
//	ed.Redo()                          // "a()b"
//
// Editors are not safe for concurrent use; each is driven from one event loop.
package engine
