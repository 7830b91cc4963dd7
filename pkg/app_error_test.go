package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("NOT_FOUND", "Recurring item not found", http.StatusNotFound)
		if e.Error() != "NOT_FOUND: Recurring item not found" {
			t.Fatalf("unexpected error string: %s", e.Error())
		}
		if got := e.ToHTTPError(); got.Code != "NOT_FOUND" || got.Message != "Recurring item not found" {
			t.Fatalf("unexpected http error: %+v", got)
		}
	})

	t.Run("cause is kept internal", func(t *testing.T) {
		cause := errors.New("dynamodb timeout")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected cause to unwrap")
		}
		if got := e.ToHTTPError(); got.Message != "An internal error occurred" {
			t.Fatalf("cause leaked into http error: %+v", got)
		}
	})
}
