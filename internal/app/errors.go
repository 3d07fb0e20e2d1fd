// Package app provides the editor: the run loop, key dispatch, the save
// flow and screen drawing.
package app

import (
	"errors"
	"fmt"
)

// TerminalError reports a failure while drawing to or reading from the
// terminal. The editor cannot continue after one.
type TerminalError struct {
	Op  string // Operation name (e.g., "draw", "read key")
	Err error  // Underlying error
}

// NewTerminalError creates a new TerminalError.
func NewTerminalError(op string, err error) *TerminalError {
	return &TerminalError{
		Op:  op,
		Err: err,
	}
}

func (e *TerminalError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
	}
	return "terminal " + e.Op
}

func (e *TerminalError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is implements errors.Is for TerminalError.
// Matches both the wrapper itself and the wrapped error.
func (e *TerminalError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*TerminalError); ok {
		return e == t
	}
	return errors.Is(e.Err, target)
}

// RecoveredPanicError wraps a panic value as an error.
// The Error() method includes the full stack trace; keep it out of
// user-facing messages.
type RecoveredPanicError struct {
	Value any
	Stack string
}

// NewRecoveredPanicError creates a new RecoveredPanicError.
func NewRecoveredPanicError(value any, stack string) *RecoveredPanicError {
	return &RecoveredPanicError{
		Value: value,
		Stack: stack,
	}
}

func (e *RecoveredPanicError) Error() string {
	if e == nil {
		return ""
	}
	if e.Stack != "" {
		return fmt.Sprintf("panic: %v\n%s", e.Value, e.Stack)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}
