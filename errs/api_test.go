package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelMatching(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("no blog found with that ID")))
	assert.True(t, IsUnauthorized(NewPermissionDenied()))
	assert.True(t, IsConflict(NewAlreadyExists("user")))
	assert.True(t, IsValidationError(NewMissingRequiredFieldError("title")))
	assert.True(t, IsBadUpload(NewBadUploadError("text/plain")))

	assert.False(t, IsNotFound(NewPermissionDenied()))
}

func TestPermissionDeniedShape(t *testing.T) {
	err := NewPermissionDenied()
	assert.Equal(t, http.StatusUnauthorized, err.StatusCode)
	assert.Contains(t, err.Error(), "you do not have permission to perform this action")
}

func TestErrorIncludesDetails(t *testing.T) {
	err := NewBadUploadError("text/plain")
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "image", err.Field)
	assert.Contains(t, err.Error(), "Not an image! Please upload only images (got text/plain)")
}

func TestWrappedSentinelSurvivesErrorsIs(t *testing.T) {
	wrapped := fmt.Errorf("while handling request: %w", NewNotFoundError("gone"))
	assert.True(t, errors.Is(wrapped, ErrNotFound))

	var apiErr *ApiErr
	assert.True(t, errors.As(wrapped, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestDatabaseErrorClassification(t *testing.T) {
	dup := NewDatabaseError("create", "user", errors.New(`duplicate key value violates unique constraint "idx_users_email"`))
	assert.Equal(t, http.StatusConflict, dup.StatusCode)

	conn := NewDatabaseError("find", "blog", errors.New("connection refused"))
	assert.Equal(t, http.StatusServiceUnavailable, conn.StatusCode)

	generic := NewDatabaseError("find", "blog", errors.New("some other failure"))
	assert.Equal(t, http.StatusInternalServerError, generic.StatusCode)
}

func TestGetFullErrorChainsCauses(t *testing.T) {
	inner := NewDatabaseError("find", "blog", errors.New("timeout"))
	outer := NewInternalErrorWithCause("request failed", inner)

	full := outer.GetFullError()
	assert.Contains(t, full, "request failed")
	assert.Contains(t, full, "timeout")
}
