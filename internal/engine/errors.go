package engine

import (
	"errors"
	"fmt"

	"github.com/Sadvi2004/CodeForge/internal/engine/history"
)

// Errors returned by engine operations.
var (
	// ErrInvalidRange indicates a mutation range outside the buffer or with
	// end < start. It is a caller bug; the buffer is left untouched.
	ErrInvalidRange = errors.New("invalid range")

	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = history.ErrNothingToUndo

	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = history.ErrNothingToRedo
)

// RangeError describes a rejected mutation range.
type RangeError struct {
	Start, End int
	Len        int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range [%d, %d) for buffer of length %d", e.Start, e.End, e.Len)
}

// Unwrap returns ErrInvalidRange.
func (e *RangeError) Unwrap() error {
	return ErrInvalidRange
}
