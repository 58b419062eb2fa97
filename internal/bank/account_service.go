package bank

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-client/internal/operator/actions"
	"github.com/carson-networks/bank-client/internal/storage"
	"github.com/carson-networks/bank-client/internal/storage/account"
)

// AccountOpen is a request to open an account.
type AccountOpen struct {
	Type           string
	Currency       string
	Branch         string
	InitialDeposit decimal.Decimal
}

// AccountService handles account business logic.
type AccountService struct {
	storage  *storage.Storage
	operator actionProcessor
}

func NewAccountService(store *storage.Storage, operator actionProcessor) *AccountService {
	return &AccountService{storage: store, operator: operator}
}

// CreateAccount opens an account for owner.
func (s *AccountService) CreateAccount(ctx context.Context, owner uuid.UUID, open AccountOpen) (*account.Account, error) {
	action := &actions.CreateAccount{Create: account.AccountCreate{
		OwnerID:        owner,
		Type:           open.Type,
		Currency:       open.Currency,
		Branch:         open.Branch,
		InitialBalance: open.InitialDeposit,
	}}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Account, nil
}

// ListAccounts returns owner's accounts oldest first.
func (s *AccountService) ListAccounts(ctx context.Context, owner uuid.UUID) ([]*account.Account, error) {
	return s.storage.Read(ctx).Accounts.ListByOwner(ctx, owner)
}
