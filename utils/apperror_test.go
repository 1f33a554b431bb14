package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", ValidationError("bad input"), http.StatusBadRequest},
		{"conflict renders as bad request", ConflictError("already exists"), http.StatusBadRequest},
		{"auth", AuthError("no"), http.StatusUnauthorized},
		{"forbidden", ForbiddenError("no"), http.StatusForbidden},
		{"not found", NotFoundError("gone"), http.StatusNotFound},
		{"upstream", UpstreamError("db down", errors.New("boom")), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestKindOfUnwrapsWrappedErrors(t *testing.T) {
	inner := NotFoundError("gone")
	wrapped := fmt.Errorf("while handling request: %w", inner)

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(wrapped))
}

func TestUpstreamErrorHidesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := UpstreamError("Failed to fetch user", cause)

	assert.Equal(t, "Failed to fetch user", err.Error())
	assert.ErrorIs(t, err, cause)
}
