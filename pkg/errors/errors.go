package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ListenerError reports a failure to attach or detach an event listener on
// a host target.
type ListenerError struct {
	Op     string
	Target string
	Event  string
	Err    error
}

// NewListenerError constructs a ListenerError. Op is "attach" or "detach".
func NewListenerError(op, target, event string, err error) error {
	return &ListenerError{Op: op, Target: target, Event: event, Err: err}
}

func (e *ListenerError) Error() string {
	if e == nil {
		return ""
	}
	op := e.Op
	if op == "" {
		op = "attach"
	}
	if e.Event != "" {
		return fmt.Sprintf("listener error: %s %s on %s: %v", op, e.Event, e.Target, e.Err)
	}
	return fmt.Sprintf("listener error: %s on %s: %v", op, e.Target, e.Err)
}

// Unwrap exposes the underlying error.
func (e *ListenerError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
