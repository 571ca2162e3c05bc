package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAuthenticationError_Fallback(t *testing.T) {
	err := NewAuthenticationError("", "Login failed")
	assert.Equal(t, "Login failed", err.Error())

	err = NewAuthenticationError("Invalid credentials", "Login failed")
	assert.Equal(t, "Invalid credentials", err.Error())
}

func TestValidationError_Format(t *testing.T) {
	err := &ValidationError{Field: "phone", Message: "must be 10 digits"}
	assert.Equal(t, "phone: must be 10 digits", err.Error())

	err = &ValidationError{Message: "passwords do not match"}
	assert.Equal(t, "passwords do not match", err.Error())
}

func TestFromStatus(t *testing.T) {
	t.Run("unauthorized", func(t *testing.T) {
		err := FromStatus(http.StatusUnauthorized, "token expired")
		var unauth *UnauthorizedError
		assert.True(t, stderrors.As(err, &unauth))
		assert.Equal(t, "token expired", unauth.Message)
	})

	t.Run("server error wraps as network error", func(t *testing.T) {
		err := FromStatus(http.StatusBadGateway, "")
		var netErr *NetworkError
		assert.True(t, stderrors.As(err, &netErr))
		var apiErr *APIError
		assert.True(t, stderrors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	})

	t.Run("client error", func(t *testing.T) {
		err := FromStatus(http.StatusConflict, "duplicate party")
		var apiErr *APIError
		assert.True(t, stderrors.As(err, &apiErr))
		assert.Contains(t, apiErr.Error(), "duplicate party")
	})
}

func TestStorageError_Unwrap(t *testing.T) {
	inner := stderrors.New("disk full")
	err := &StorageError{Op: "write", Err: inner}
	assert.ErrorIs(t, err, inner)
}
