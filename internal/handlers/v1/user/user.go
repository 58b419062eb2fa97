// Package user serves the sandbox user service: sign-in, sign-up and profiles.
package user

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bank-client/internal/bank"
	storageuser "github.com/carson-networks/bank-client/internal/storage/user"
)

type signInService interface {
	SignIn(ctx context.Context, email, password string) (string, uuid.UUID, error)
}

type registrar interface {
	Register(ctx context.Context, reg bank.Registration) (uuid.UUID, error)
}

type profileService interface {
	Authenticate(ctx context.Context, token string) (uuid.UUID, error)
	GetUser(ctx context.Context, caller, id uuid.UUID) (*storageuser.User, error)
}
