package bank

import (
	"context"
	"errors"

	"github.com/carson-networks/bank-client/internal/operator/actions"
	"github.com/carson-networks/bank-client/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("missing or invalid token")
	ErrForbidden          = errors.New("access denied")
)

// actionProcessor runs write actions one at a time.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Bank holds the sandbox business services.
type Bank struct {
	Users        *UserService
	Accounts     *AccountService
	Transactions *TransactionService
}

func NewBank(store *storage.Storage, operator actionProcessor) *Bank {
	return &Bank{
		Users:        NewUserService(store, operator),
		Accounts:     NewAccountService(store, operator),
		Transactions: NewTransactionService(store, operator),
	}
}
