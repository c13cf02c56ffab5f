package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsCarryCodeAndStatus(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{NewDuplicateID("agent", "a1"), CodeDuplicateID, http.StatusConflict},
		{NewTicketNotFound("t1"), CodeTicketNotFound, http.StatusNotFound},
		{NewSenderNotAuthorized("t1", "x"), CodeSenderNotAuthorized, http.StatusForbidden},
		{NewInvalidSatisfactionScore(9), CodeInvalidSatisfactionScore, http.StatusBadRequest},
		{NewNotFound("client", nil), CodeNotFound, http.StatusNotFound},
		{NewValidationError("bad input", nil), CodeValidationFailed, http.StatusBadRequest},
	}

	for _, tc := range cases {
		var domainErr *DomainError
		require.ErrorAs(t, tc.err, &domainErr)
		assert.Equal(t, tc.code, domainErr.Code)
		assert.Equal(t, tc.status, domainErr.HTTPStatus)
		assert.True(t, HasCode(tc.err, tc.code))
	}
}

func TestHasCodeSeesWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("creating ticket: %w", NewTicketNotFound("t1"))

	assert.True(t, HasCode(wrapped, CodeTicketNotFound))
	assert.False(t, HasCode(wrapped, CodeDuplicateID))
	assert.False(t, HasCode(nil, CodeTicketNotFound))
}

func TestToDomainErrorWrapsUnknownErrors(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))

	plain := errors.New("disk full")
	converted := ToDomainError(plain)
	require.NotNil(t, converted)
	assert.Equal(t, CodeInternalError, converted.Code)
	assert.Equal(t, http.StatusInternalServerError, converted.HTTPStatus)
	assert.ErrorIs(t, converted, plain)

	domain := NewTicketNotFound("t1")
	assert.Same(t, domain.(*DomainError), ToDomainError(domain))
}

func TestErrorMessageIncludesCause(t *testing.T) {
	err := NewInternalError(errors.New("db gone"))
	assert.Contains(t, err.Error(), "db gone")
}
