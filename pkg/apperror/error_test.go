package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-jobportal-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	cases := []struct {
		err  *apperror.AppError
		code int
	}{
		{apperror.BadRequest("bad"), http.StatusBadRequest},
		{apperror.Unauthorized("who"), http.StatusUnauthorized},
		{apperror.Forbidden("no"), http.StatusForbidden},
		{apperror.NotFound("gone"), http.StatusNotFound},
		{apperror.Conflict("dup"), http.StatusConflict},
		{apperror.Internal(errors.New("boom")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.Code)
	}
}

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("pq: relation does not exist")
	err := apperror.Internal(cause)

	assert.Equal(t, "Internal Server Error", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestStatusOfWrapped(t *testing.T) {
	wrapped := fmt.Errorf("create company: %w", apperror.Conflict("taken"))

	assert.Equal(t, http.StatusConflict, apperror.StatusOf(wrapped))
	assert.Equal(t, http.StatusInternalServerError, apperror.StatusOf(errors.New("plain")))

	appErr, ok := apperror.As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "taken", appErr.Message)
}
