package engine

// Caret movement never touches history and publishes nothing.

// SetCaret collapses the selection to off (clamped into the buffer).
func (e *Editor) SetCaret(off int) {
	e.buf.SetCaret(off)
	e.goalCol = -1
}

// SetSelection selects [start, end) (clamped and ordered).
func (e *Editor) SetSelection(start, end int) {
	e.buf.SetSelection(start, end)
	e.goalCol = -1
}

// SelectAll selects the whole buffer.
func (e *Editor) SelectAll() {
	e.SetSelection(0, e.buf.Len())
}

// MoveLeft collapses a selection to its start, or moves the caret one
// grapheme cluster left.
func (e *Editor) MoveLeft() {
	start, end := e.buf.Selection()
	if start != end {
		e.SetCaret(start)
		return
	}
	e.SetCaret(e.buf.PrevBoundary(start))
}

// MoveRight collapses a selection to its end, or moves the caret one
// grapheme cluster right.
func (e *Editor) MoveRight() {
	start, end := e.buf.Selection()
	if start != end {
		e.SetCaret(end)
		return
	}
	e.SetCaret(e.buf.NextBoundary(end))
}

// MoveHome moves the caret to the start of its line.
func (e *Editor) MoveHome() {
	e.SetCaret(e.buf.LineStart(e.buf.Caret()))
}

// MoveEnd moves the caret to the end of its line.
func (e *Editor) MoveEnd() {
	e.SetCaret(e.buf.LineEnd(e.buf.Caret()))
}

// MoveUp moves the caret to the previous line, keeping its column where
// the line is long enough.
func (e *Editor) MoveUp() {
	caret := e.buf.Caret()
	lineStart := e.buf.LineStart(caret)
	if lineStart == 0 {
		e.SetCaret(0)
		return
	}
	col := e.goal(caret)
	prevStart := e.buf.LineStart(lineStart - 1)
	e.buf.SetCaret(e.buf.OffsetAtColumn(prevStart, col))
}

// MoveDown moves the caret to the next line, keeping its column where the
// line is long enough.
func (e *Editor) MoveDown() {
	caret := e.buf.Caret()
	lineEnd := e.buf.LineEnd(caret)
	if lineEnd == e.buf.Len() {
		e.SetCaret(lineEnd)
		return
	}
	col := e.goal(caret)
	e.buf.SetCaret(e.buf.OffsetAtColumn(lineEnd+1, col))
}

func (e *Editor) goal(caret int) int {
	if e.goalCol < 0 {
		e.goalCol = e.buf.Column(caret)
	}
	return e.goalCol
}
