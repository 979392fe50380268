package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Codes(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("bad"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("missing"), ErrorTypeNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("dup"), ErrorTypeConflict, http.StatusConflict},
		{"forbidden", NewForbiddenError("nope"), ErrorTypeForbidden, http.StatusForbidden},
		{"invalid transition", NewInvalidTransitionError("terminal"), ErrorTypeInvalidTransition, http.StatusUnprocessableEntity},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestAppError_ErrorIncludesDetails(t *testing.T) {
	err := NewConflictError("product in use", "3 tenants entitled")
	assert.Equal(t, "conflict: product in use (3 tenants entitled)", err.Error())
	assert.Equal(t, "not_found: gone", NewNotFoundError("gone").Error())
}

func TestTypePredicates_UnwrapWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("grant: %w", NewInvalidTransitionError("completed"))

	assert.True(t, IsInvalidTransitionError(wrapped))
	assert.False(t, IsNotFoundError(wrapped))
	assert.True(t, IsForbiddenError(NewForbiddenError("x")))
	assert.Nil(t, GetAppError(stderrors.New("plain")))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(stderrors.New("Error 1062: Duplicate entry 'crm-1a2b' for key 'idx_access_link'")))
	assert.True(t, IsDuplicateError(stderrors.New("UNIQUE constraint failed: product_entitlements.access_link")))
	assert.False(t, IsDuplicateError(stderrors.New("connection refused")))
	assert.False(t, IsDuplicateError(nil))
}
