package geometry

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainError_Error(t *testing.T) {
	err := &DomainError{Code: ErrCodeValidation, Message: "invalid"}
	want := "VALIDATION_ERROR: invalid"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}

	wrapped := &DomainError{Code: ErrCodeListener, Message: "attach failed", Cause: err}
	wantWrapped := "LISTENER_ERROR: attach failed: VALIDATION_ERROR: invalid"
	if wrapped.Error() != wantWrapped {
		t.Fatalf("expected %q, got %q", wantWrapped, wrapped.Error())
	}
}

func TestDomainError_IsAndUnwrap(t *testing.T) {
	inner := &DomainError{Code: ErrCodeState, Message: "not mounted"}
	outer := &DomainError{Code: ErrCodeListener, Message: "attach", Cause: inner}

	if !errors.Is(outer, inner) {
		t.Fatal("expected errors.Is to match wrapped domain error")
	}
	if errors.Is(inner, outer) {
		t.Fatal("expected errors.Is to be directional")
	}
	if errors.Is(outer, fmt.Errorf("other")) {
		t.Fatal("expected non-domain errors to return false")
	}
	if !HasCode(fmt.Errorf("wrapped: %w", outer), ErrCodeListener) {
		t.Fatal("expected HasCode to see through fmt wrapping")
	}
}

func TestDomainError_WithContext(t *testing.T) {
	err := &DomainError{Code: ErrCodeListener, Message: "attach", Context: map[string]interface{}{"event": "scroll"}}
	updated := err.WithContext(map[string]interface{}{"target": "window"})

	if updated.Context["event"] != "scroll" || updated.Context["target"] != "window" {
		t.Fatalf("context merge failed: %+v", updated.Context)
	}
	if updated == err {
		t.Fatal("WithContext should return a new instance")
	}
}

func TestDomainError_NilReceiver(t *testing.T) {
	var err *DomainError
	if got := err.Error(); got != "<nil>" {
		t.Fatalf("expected <nil> string, got %q", got)
	}
	if err.Unwrap() != nil {
		t.Fatal("expected nil unwrap for nil receiver")
	}
	if err.WithContext(map[string]interface{}{"key": "value"}) != nil {
		t.Fatal("expected nil WithContext result for nil receiver")
	}
}
