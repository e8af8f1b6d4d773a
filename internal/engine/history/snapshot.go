package history

// Snapshot is the captured state of a buffer at one point in time.
// Snapshots are values and are never modified after capture.
type Snapshot struct {
	Text     string
	SelStart int
	SelEnd   int
}

// Target is the live buffer a History captures from and restores into.
type Target interface {
	// Text returns the full buffer contents.
	Text() string

	// Selection returns the selection anchor and extent as byte offsets.
	Selection() (start, end int)

	// Restore replaces the contents and selection in one step.
	Restore(text string, start, end int)
}

// Capture returns a snapshot of the target's current state.
func Capture(t Target) Snapshot {
	start, end := t.Selection()
	return Snapshot{Text: t.Text(), SelStart: start, SelEnd: end}
}

// Valid reports whether the selection lies inside the text and is ordered.
func (s Snapshot) Valid() bool {
	return s.SelStart >= 0 && s.SelStart <= s.SelEnd && s.SelEnd <= len(s.Text)
}
