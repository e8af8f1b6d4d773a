package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Sadvi2004/CodeForge/internal/input/key"
)

var (
	// ErrQuit is returned by HandleKey when the user asked to leave.
	ErrQuit = errors.New("quit requested")

	// ErrUnknownBuffer is returned for a buffer kind outside markup, style and script.
	ErrUnknownBuffer = errors.New("unknown buffer")
)

// OperationError records which editor operation failed and on what.
type OperationError struct {
	Op     string // "edit", "paste", "export", "preview", "apply"
	Target string // buffer name, file path or "config"
	Key    string // keystroke that triggered the operation, if any
	Err    error
}

// NewOperationError wraps err as a failure of op on target.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

// OnKey records the keystroke behind the failure. Nil-safe.
func (e *OperationError) OnKey(ev key.Event) *OperationError {
	if e != nil {
		e.Key = ev.String()
	}
	return e
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(e.Op)
	if e.Target != "" {
		sb.WriteString(" " + e.Target)
	}
	if e.Key != "" {
		fmt.Fprintf(&sb, " on %s", e.Key)
	}
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	return sb.String()
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RecoveredPanicError is a panic caught in the event loop. Stack goes to
// the log file only.
type RecoveredPanicError struct {
	Value any
	Stack string
}

// NewRecoveredPanicError wraps a value returned by recover.
func NewRecoveredPanicError(value any, stack string) *RecoveredPanicError {
	return &RecoveredPanicError{Value: value, Stack: stack}
}

func (e *RecoveredPanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}
