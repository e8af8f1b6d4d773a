// Package buffer provides the text buffers edited in a playground session.
//
// A Buffer holds the full text of one document kind (markup, style or
// script) together with its selection. Offsets are byte offsets into the
// UTF-8 text; caret movement helpers step over whole grapheme clusters so a
// caret never lands inside a multi-byte character or a combining sequence.
//
// Buffers have no undo state of their own. They implement history.Target so
// the engine can capture and restore them.
package buffer
