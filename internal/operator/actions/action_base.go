package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/bank-client/internal/storage"
)

var (
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrSameAccount       = errors.New("cannot transfer to the same account")
	ErrNotOwner          = errors.New("account does not belong to user")
	ErrInvalidAmount     = errors.New("amount must be positive")
)

// IAction is one unit of work run inside a storage write transaction. Returning an
// error rolls the transaction back.
type IAction interface {
	Name() string
	Perform(ctx context.Context, writer *storage.Writer) error
}
