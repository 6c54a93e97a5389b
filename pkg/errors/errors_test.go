package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	err := NotFound("invoice INV-9", nil)
	assert.Equal(t, "invoice INV-9 not found", err.Error())
	assert.Equal(t, http.StatusNotFound, err.StatusCode())

	cause := errors.New("id 7")
	wrapped := NotFound("patient", cause)
	assert.Equal(t, "patient not found: id 7", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)

	assert.Equal(t, http.StatusBadRequest, BadRequest("bad id", nil).StatusCode())
	assert.Equal(t, http.StatusInternalServerError, Internal(cause).StatusCode())
}

func TestIsNotFoundThroughWrapping(t *testing.T) {
	err := fmt.Errorf("failed to get patient: %w", NotFound("patient", nil))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotFound(BadRequest("x", nil)))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusCode(fmt.Errorf("wrap: %w", NotFound("x", nil))))
	assert.Equal(t, http.StatusBadRequest, StatusCode(BadRequest("x", nil)))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("plain")))
	assert.Equal(t, http.StatusGatewayTimeout, StatusCode(fmt.Errorf("failed to list patients: %w", context.DeadlineExceeded)))

	var appErr *AppError
	assert.True(t, As(fmt.Errorf("wrap: %w", BadRequest("x", nil)), &appErr))
	assert.Equal(t, ErrBadRequest, appErr.Code)
}
