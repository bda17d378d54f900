package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAs(t *testing.T) {
	dbErr := DatabaseError("Failed to create alert", stderrors.New("database is locked"))
	wrapped := fmt.Errorf("tick: %w", dbErr)

	got := As(wrapped, "fallback")
	if got != dbErr {
		t.Fatalf("As() = %v, want the wrapped AppError", got)
	}

	plain := As(stderrors.New("boom"), "Failed to list packets")
	if plain.Code != ErrCodeInternal || plain.StatusCode != http.StatusInternalServerError {
		t.Errorf("As() fallback = %+v", plain)
	}
	if plain.Message != "Failed to list packets" {
		t.Errorf("As() fallback message = %q", plain.Message)
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NotFound("Alert"))
	if !HasCode(err, ErrCodeNotFound) {
		t.Error("HasCode() = false, want true")
	}
	if HasCode(err, ErrCodeDatabase) {
		t.Error("HasCode() matched the wrong code")
	}
	if HasCode(stderrors.New("plain"), ErrCodeNotFound) {
		t.Error("HasCode() matched a plain error")
	}
}

func TestAppError_Error(t *testing.T) {
	err := DatabaseError("Failed to list agents", stderrors.New("no such table: agents"))
	if got := err.Error(); got != "Failed to list agents: no such table: agents" {
		t.Errorf("Error() = %q", got)
	}
	if !stderrors.Is(err, err.Internal) {
		t.Error("Unwrap() does not expose the internal error")
	}
}
