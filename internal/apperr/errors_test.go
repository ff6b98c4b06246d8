package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/resource-hub/internal/apperr"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("limit must be a number")

	if err.Error() != "limit must be a number" {
		t.Errorf("expected 'limit must be a number', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("STORAGE_TYPE: must be a valid value")
	err := apperr.NewValidationWrap("invalid storage configuration", inner)

	if err.Error() != "invalid storage configuration: STORAGE_TYPE: must be a valid value" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("unknown storage type")

	wrapped := fmt.Errorf("failed to load config: %w", original)
	doubleWrapped := fmt.Errorf("startup: %w", wrapped)

	var ve *apperr.ValidationError
	if !errors.As(doubleWrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through double wrapping")
	}
	if ve.Message != "unknown storage type" {
		t.Errorf("expected 'unknown storage type', got %q", ve.Message)
	}
}

func TestNotFound(t *testing.T) {
	sentinel := errors.New("not found")
	err := apperr.NewNotFound("blog", "first-post", sentinel)

	if err.Error() != "blog not found: first-post" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(fmt.Errorf("get: %w", err), sentinel) {
		t.Error("expected Unwrap to reach the sentinel")
	}
}
