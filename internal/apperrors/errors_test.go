package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/tea_factory_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestInvalidInput_UnwrapsToValidation(t *testing.T) {
	err := apperrors.NewInvalidInput("quantity", "must be greater than zero, got %s", "-5")
	wrapped := fmt.Errorf("create firewood transaction: %w", err)

	assert.ErrorIs(t, wrapped, apperrors.ErrValidation)
	assert.EqualError(t, err, "invalid quantity: must be greater than zero, got -5")

	field, ok := apperrors.FieldOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "quantity", field)
}

func TestFieldOf_NoInvalidInput(t *testing.T) {
	_, ok := apperrors.FieldOf(apperrors.ErrNotFound)
	assert.False(t, ok)
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperrors.NewInternalServerError("failed to commit", cause)

	assert.Equal(t, http.StatusInternalServerError, err.Code)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to commit: connection reset", err.Error())
}

func TestNewConflictError(t *testing.T) {
	err := apperrors.NewConflictError("batch number B-001 already exists")

	assert.Equal(t, http.StatusConflict, err.Code)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}
