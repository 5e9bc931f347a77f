// Package perr provides a structured error type for the ambient layers
// around the posit core. The config loader, the FFI shim and the harness CLI
// do not use it; they report errors with errors.New and fmt.Errorf. The core
// packages (bitbuf, regime, posit) never return an error — every failure
// mode there collapses to NaR or a silent saturation, per spec.md §7.
package perr

import "fmt"

// Error carries the operation name and operand context for a failure
// surfaced by the ambient layers.
type Error struct {
	Op      string // the operation that failed, e.g. "config.Load", "cshim.posit_add"
	Operand string // a human-readable description of the offending operand, if any
	Message string
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	prefix := e.Op
	if e.Operand != "" {
		prefix = fmt.Sprintf("%s(%s)", e.Op, e.Operand)
	}
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// New creates an Error with no wrapped cause.
func New(op, message string) *Error {
	return &Error{Op: op, Message: message}
}

// Wrap wraps an existing error with operation context. If err is already a
// *Error it is returned unchanged rather than double-wrapped; if err is nil,
// Wrap returns nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*Error); ok {
		return err
	}
	return &Error{Op: op, Message: "operation failed", Wrapped: err}
}

// WrapConfigError wraps a config load/save error with the config file path
// as operand context.
func WrapConfigError(path string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*Error); ok {
		return err
	}
	return &Error{Op: "config", Operand: path, Message: "failed to load or save configuration", Wrapped: err}
}

// WithOperand attaches operand context to an existing *Error, returning it
// unchanged if e is nil or already carries an operand.
func WithOperand(e *Error, operand string) *Error {
	if e == nil || e.Operand != "" {
		return e
	}
	e.Operand = operand
	return e
}
