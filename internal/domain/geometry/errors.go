package geometry

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the error categories raised by the placement engine.
type ErrorCode string

const (
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	ErrCodeState      ErrorCode = "INVALID_STATE"
	ErrCodeListener   ErrorCode = "LISTENER_ERROR"
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrCodeInternal   ErrorCode = "INTERNAL_ERROR"
)

// DomainError is a typed error enriched with contextual data.
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// NewDomainError constructs a DomainError.
func NewDomainError(code ErrorCode, message string, cause error, context map[string]interface{}) *DomainError {
	return &DomainError{Code: code, Message: message, Cause: cause, Context: context}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As usage.
func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is matches other DomainError values with the same code and message.
func (e *DomainError) Is(target error) bool {
	var domainErr *DomainError
	if !errors.As(target, &domainErr) {
		return false
	}
	return e.Code == domainErr.Code && e.Message == domainErr.Message
}

// WithContext clones the error with additional contextual metadata.
func (e *DomainError) WithContext(ctx map[string]interface{}) *DomainError {
	if e == nil {
		return nil
	}
	merged := make(map[string]interface{}, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Cause:   e.Cause,
		Context: merged,
	}
}

// HasCode reports whether err wraps a DomainError with the given code.
func HasCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		return false
	}
	return domainErr.Code == code
}

func newValidationError(message string, context map[string]interface{}) *DomainError {
	return NewDomainError(ErrCodeValidation, message, nil, context)
}
