// Package transaction serves the sandbox transaction service: statements and transfers.
package transaction

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bank-client/internal/bank"
	storagetransaction "github.com/carson-networks/bank-client/internal/storage/transaction"
)

type authenticator interface {
	Authenticate(ctx context.Context, token string) (uuid.UUID, error)
}

type statementService interface {
	Statement(ctx context.Context, owner uuid.UUID, accountNumber string) ([]*storagetransaction.Transaction, error)
}

type transferService interface {
	Transfer(ctx context.Context, owner uuid.UUID, order bank.TransferOrder) error
}
