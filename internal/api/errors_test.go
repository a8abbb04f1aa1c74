package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pulsecheck-app/pulsecheck-api/internal/domain"
	"github.com/pulsecheck-app/pulsecheck-api/internal/service"
	"github.com/pulsecheck-app/pulsecheck-api/internal/service/auth"
	"github.com/pulsecheck-app/pulsecheck-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "expired token", err: auth.ErrExpiredToken, want: http.StatusUnauthorized},
		{name: "invalid token", err: auth.ErrInvalidToken, want: http.StatusUnauthorized},
		{name: "wrong token type", err: auth.ErrWrongTokenType, want: http.StatusUnauthorized},
		{name: "user not found", err: store.ErrUserNotFound, want: http.StatusNotFound},
		{name: "assessment not found", err: store.ErrAssessmentNotFound, want: http.StatusNotFound},
		{name: "email exists", err: store.ErrEmailExists, want: http.StatusConflict},
		{name: "invalid entity", err: store.ErrInvalidEntity, want: http.StatusBadRequest},
		{name: "ordinal out of range", err: domain.ErrOrdinalOutOfRange, want: http.StatusBadRequest},
		{name: "invalid period", err: service.ErrInvalidPeriod, want: http.StatusBadRequest},
		{name: "wrapped sentinel", err: fmt.Errorf("loading: %w", store.ErrUserNotFound), want: http.StatusNotFound},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessageNeverEchoesDetails(t *testing.T) {
	t.Parallel()

	internal := errors.New("pq: connection to postgres://user:secret@db failed")
	msg := GetSafeErrorMessage(internal)

	assert.NotContains(t, msg, "secret")
	assert.NotContains(t, msg, "postgres://")
	assert.Equal(t, "An unexpected error occurred", msg)
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	err := errors.New(
		"Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag")
	msg := SanitizeValidationError(err)

	assert.Contains(t, msg, "Email")
	assert.NotContains(t, msg, "LoginRequest")

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("boom")))
}
