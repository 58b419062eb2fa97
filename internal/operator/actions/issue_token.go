package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bank-client/internal/storage"
)

type IssueToken struct {
	UserID uuid.UUID

	Token string
}

func (i *IssueToken) Name() string { return "IssueToken" }

func (i *IssueToken) Perform(ctx context.Context, writer *storage.Writer) error {
	token, err := writer.User.IssueToken(ctx, i.UserID)
	if err != nil {
		return err
	}
	i.Token = token
	return nil
}
