package utils

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestHandleErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", NewValidationError("bad input", nil), fiber.StatusBadRequest},
		{"order", NewOrderError("no lines", nil), fiber.StatusUnprocessableEntity},
		{"not found", NewNotFoundError("missing", nil), fiber.StatusNotFound},
		{"database", NewDatabaseError("insert", errors.New("disk full")), fiber.StatusInternalServerError},
		{"plain error", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return HandleError(c, tt.err) })
			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.want {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestIsKindUnwraps(t *testing.T) {
	inner := NewValidationError("extras vlees not allowed for pizza products", nil)
	outer := NewValidationError("line 2", inner)
	if !IsKind(outer, KindValidation) || IsKind(outer, KindOrder) {
		t.Fatal("IsKind mismatch on wrapped error")
	}
	if outer.Error() != "line 2: extras vlees not allowed for pizza products" {
		t.Fatalf("Error() = %q", outer.Error())
	}
}
