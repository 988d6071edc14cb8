package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code int
		typ  ErrorType
	}{
		{"validation", NewValidationError("bad"), http.StatusBadRequest, ErrorTypeValidation},
		{"not found", NewNotFoundError("missing"), http.StatusNotFound, ErrorTypeNotFound},
		{"conflict", NewConflictError("dup"), http.StatusConflict, ErrorTypeConflict},
		{"unauthorized", NewUnauthorizedError("no"), http.StatusUnauthorized, ErrorTypeUnauthorized},
		{"forbidden", NewForbiddenError("no"), http.StatusForbidden, ErrorTypeForbidden},
		{"internal", NewInternalError("boom"), http.StatusInternalServerError, ErrorTypeInternal},
		{"rate limited", NewRateLimitedError("slow down"), http.StatusTooManyRequests, ErrorTypeRateLimited},
		{"too large", NewPayloadTooLargeError("big"), http.StatusRequestEntityTooLarge, ErrorTypeTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.typ, tt.err.Type)
		})
	}
}

func TestAppErrorMessageIncludesDetails(t *testing.T) {
	err := NewValidationError("invalid rating", "rating must be between 1 and 5")
	assert.Equal(t, "validation_error: invalid rating (rating must be between 1 and 5)", err.Error())
	assert.Equal(t, "not_found: order not found", NewNotFoundError("order not found").Error())
}

func TestGetAppErrorUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("repo: %w", NewNotFoundError("review not found"))

	assert.True(t, IsAppError(wrapped))
	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsConflictError(wrapped))
	assert.Nil(t, GetAppError(fmt.Errorf("plain")))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(fmt.Errorf("Error 1062: Duplicate entry 'a@b.c' for key 'email'")))
	assert.True(t, IsDuplicateError(fmt.Errorf("UNIQUE constraint failed: subscriptions.email")))
	assert.False(t, IsDuplicateError(fmt.Errorf("connection refused")))
	assert.False(t, IsDuplicateError(nil))
}
