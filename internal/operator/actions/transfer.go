package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-client/internal/storage"
	"github.com/carson-networks/bank-client/internal/storage/transaction"
)

// Transfer debits one of the owner's accounts and credits another account, writing
// a ledger line on each side.
type Transfer struct {
	OwnerID     uuid.UUID
	From        string
	To          string
	Amount      decimal.Decimal
	Description string
	Branch      string
}

func (t *Transfer) Name() string { return "Transfer" }

func (t *Transfer) Perform(ctx context.Context, writer *storage.Writer) error {
	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if t.From == t.To {
		return ErrSameAccount
	}

	from, err := writer.Account.FindByNumber(ctx, t.From)
	if err != nil {
		return err
	}
	if from.OwnerID != t.OwnerID {
		return ErrNotOwner
	}
	to, err := writer.Account.FindByNumber(ctx, t.To)
	if err != nil {
		return err
	}
	if from.Balance.LessThan(t.Amount) {
		return ErrInsufficientFunds
	}

	if err := writer.Account.UpdateBalance(ctx, from.Number, from.Balance.Sub(t.Amount)); err != nil {
		return err
	}
	if err := writer.Account.UpdateBalance(ctx, to.Number, to.Balance.Add(t.Amount)); err != nil {
		return err
	}

	lines := []*transaction.TransactionCreate{
		{AccountNumber: from.Number, Amount: t.Amount.Neg(), OtherParty: to.Number},
		{AccountNumber: to.Number, Amount: t.Amount, OtherParty: from.Number},
	}
	for _, line := range lines {
		line.Description = t.Description
		line.Type = transaction.TypeTransfer
		line.Branch = t.Branch
		if _, err := writer.Transaction.Insert(ctx, line); err != nil {
			return err
		}
	}
	return nil
}
