package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	apperrors "github.com/aaravmahajanofficial/cart-service/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *apperrors.AppError
		code       string
		statusCode int
	}{
		{"Validation", apperrors.ValidationError("bad input"), apperrors.ErrCodeValidation, http.StatusUnprocessableEntity},
		{"BadRequest", apperrors.BadRequestError("bad request"), apperrors.ErrCodeBadRequest, http.StatusBadRequest},
		{"NotFound", apperrors.NotFoundError("missing"), apperrors.ErrCodeNotFound, http.StatusNotFound},
		{"Internal", apperrors.InternalError("boom"), apperrors.ErrCodeInternal, http.StatusInternalServerError},
		{"Database", apperrors.DatabaseError("db down"), apperrors.ErrCodeDatabaseError, http.StatusInternalServerError},
		{"Upstream", apperrors.UpstreamError("service down"), apperrors.ErrCodeUpstreamError, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.statusCode, tt.err.StatusCode)
		})
	}
}

func TestWithErrorUnwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := apperrors.UpstreamError("Product not found").WithError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Product not found", err.Error())
}

func TestIsAppError(t *testing.T) {
	t.Run("Direct", func(t *testing.T) {
		appErr, ok := apperrors.IsAppError(apperrors.NotFoundError("missing"))
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Wrapped", func(t *testing.T) {
		wrapped := fmt.Errorf("handling request: %w", apperrors.DatabaseError("db down"))

		appErr, ok := apperrors.IsAppError(wrapped)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeDatabaseError, appErr.Code)
	})

	t.Run("Plain Error", func(t *testing.T) {
		appErr, ok := apperrors.IsAppError(stderrors.New("plain"))
		assert.False(t, ok)
		assert.Nil(t, appErr)
	})
}
