package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/bank-client/internal/bank"
	"github.com/carson-networks/bank-client/internal/operator/actions"
	"github.com/carson-networks/bank-client/internal/storage/account"
	"github.com/carson-networks/bank-client/internal/storage/user"
)

type stubAuth struct {
	id  uuid.UUID
	err error
}

func (s stubAuth) Authenticate(context.Context, string) (uuid.UUID, error) {
	return s.id, s.err
}

func TestFromDomain(t *testing.T) {
	UseMessageErrors()

	tests := []struct {
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{bank.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{bank.ErrForbidden, http.StatusForbidden, "Access denied"},
		{actions.ErrNotOwner, http.StatusForbidden, "Access denied"},
		{user.ErrNotFound, http.StatusNotFound, "User not found"},
		{account.ErrNotFound, http.StatusNotFound, "Account not found"},
		{user.ErrEmailTaken, http.StatusConflict, "Email already registered"},
		{actions.ErrInsufficientFunds, http.StatusUnprocessableEntity, "Insufficient balance"},
		{errors.New("disk"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.expectedMsg, func(t *testing.T) {
			var se huma.StatusError
			require.ErrorAs(t, FromDomain(tt.err), &se)
			assert.Equal(t, tt.expectedStatus, se.GetStatus())
			assert.Equal(t, tt.expectedMsg, se.Error())
		})
	}
}

func TestNewError_FoldsDetails(t *testing.T) {
	err := NewError(http.StatusUnprocessableEntity, "validation failed", errors.New("expected number >= 1000"))

	assert.Equal(t, "validation failed: expected number >= 1000", err.Error())
	assert.Equal(t, http.StatusUnprocessableEntity, err.GetStatus())
}

func TestAuthenticate(t *testing.T) {
	UseMessageErrors()
	id := uuid.Must(uuid.NewV4())
	ctx := context.Background()

	got, err := Authenticate(ctx, stubAuth{id: id}, "Bearer tok")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	for _, header := range []string{"", "tok", "Bearer "} {
		_, err := Authenticate(ctx, stubAuth{id: id}, header)
		assert.EqualError(t, err, "Unauthorized", "header %q", header)
	}

	_, err = Authenticate(ctx, stubAuth{err: bank.ErrUnauthorized}, "Bearer forged")
	assert.EqualError(t, err, "Unauthorized")
}
