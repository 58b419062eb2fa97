package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bank-client/internal/storage"
	"github.com/carson-networks/bank-client/internal/storage/user"
)

type RegisterUser struct {
	Create user.UserCreate

	// UserID is set once Perform succeeds.
	UserID uuid.UUID
}

func (r *RegisterUser) Name() string { return "RegisterUser" }

func (r *RegisterUser) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.User.Create(ctx, &r.Create)
	if err != nil {
		return err
	}
	r.UserID = id
	return nil
}
