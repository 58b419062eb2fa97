package bank

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-client/internal/operator/actions"
	"github.com/carson-networks/bank-client/internal/storage"
	"github.com/carson-networks/bank-client/internal/storage/transaction"
)

// TransferOrder is a request to move money out of one of the caller's accounts.
type TransferOrder struct {
	From        string
	To          string
	Amount      decimal.Decimal
	Description string
	Branch      string
}

// TransactionService handles statements and transfers.
type TransactionService struct {
	storage  *storage.Storage
	operator actionProcessor
}

func NewTransactionService(store *storage.Storage, operator actionProcessor) *TransactionService {
	return &TransactionService{storage: store, operator: operator}
}

// Statement returns the ledger of one of owner's accounts, oldest first.
func (s *TransactionService) Statement(ctx context.Context, owner uuid.UUID, accountNumber string) ([]*transaction.Transaction, error) {
	reader := s.storage.Read(ctx)
	a, err := reader.Accounts.FindByNumber(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	if a.OwnerID != owner {
		return nil, ErrForbidden
	}
	return reader.Transactions.ListByAccount(ctx, accountNumber)
}

// Transfer moves order.Amount between accounts in one write.
func (s *TransactionService) Transfer(ctx context.Context, owner uuid.UUID, order TransferOrder) error {
	return s.operator.Process(ctx, &actions.Transfer{
		OwnerID:     owner,
		From:        order.From,
		To:          order.To,
		Amount:      order.Amount,
		Description: order.Description,
		Branch:      order.Branch,
	})
}
