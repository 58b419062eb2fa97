// Package account serves the sandbox account service.
package account

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bank-client/internal/bank"
	storageaccount "github.com/carson-networks/bank-client/internal/storage/account"
)

type authenticator interface {
	Authenticate(ctx context.Context, token string) (uuid.UUID, error)
}

type accountCreator interface {
	CreateAccount(ctx context.Context, owner uuid.UUID, open bank.AccountOpen) (*storageaccount.Account, error)
}

type accountLister interface {
	ListAccounts(ctx context.Context, owner uuid.UUID) ([]*storageaccount.Account, error)
}

// AccountResponse is one account as the client sees it.
type AccountResponse struct {
	AccountNumber string  `json:"accountNumber"`
	AccountType   string  `json:"accountType"`
	Currency      string  `json:"currency"`
	Branch        string  `json:"branch"`
	Balance       float64 `json:"balance"`
	IsActive      bool    `json:"isActive"`
}

func toResponse(a *storageaccount.Account) AccountResponse {
	return AccountResponse{
		AccountNumber: a.Number,
		AccountType:   a.Type,
		Currency:      a.Currency,
		Branch:        a.Branch,
		Balance:       a.Balance.InexactFloat64(),
		IsActive:      a.IsActive,
	}
}
