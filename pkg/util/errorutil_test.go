package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewUnauthorized("nope")
	converted := ToDomainError(original)
	assert.Equal(t, http.StatusUnauthorized, converted.HTTPStatus)
	assert.Equal(t, "Unauthorized", converted.Label())

	wrapped := ToDomainError(errors.New("db exploded"))
	assert.Equal(t, http.StatusInternalServerError, wrapped.HTTPStatus)
	assert.Equal(t, "Internal Server Error", wrapped.Label())

	assert.Nil(t, ToDomainError(nil))
}

func TestLabels(t *testing.T) {
	cases := []struct {
		err   error
		label string
	}{
		{NewUnauthorized("x"), "Unauthorized"},
		{NewForbidden("x"), "Forbidden"},
		{NewNotFound("user", nil), "Not Found"},
		{NewValidationError("x", nil), "Validation failed"},
		{NewConflict("x", nil), "Conflict"},
		{NewInternalError(errors.New("x")), "Internal Server Error"},
	}
	for _, tc := range cases {
		var domainErr *DomainError
		require.ErrorAs(t, tc.err, &domainErr)
		assert.Equal(t, tc.label, domainErr.Label())
	}
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := NewInternalError(cause)
	assert.ErrorIs(t, err, cause)
}
