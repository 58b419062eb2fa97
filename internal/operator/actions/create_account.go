package actions

import (
	"context"

	"github.com/carson-networks/bank-client/internal/storage"
	"github.com/carson-networks/bank-client/internal/storage/account"
	"github.com/carson-networks/bank-client/internal/storage/transaction"
)

const initialDepositDescription = "Initial deposit"

// CreateAccount opens an account and records its initial deposit on the ledger.
type CreateAccount struct {
	Create account.AccountCreate

	Account *account.Account
}

func (c *CreateAccount) Name() string { return "CreateAccount" }

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if c.Create.InitialBalance.IsNegative() {
		return ErrInvalidAmount
	}

	created, err := writer.Account.Create(ctx, &c.Create)
	if err != nil {
		return err
	}

	if c.Create.InitialBalance.IsPositive() {
		_, err = writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
			AccountNumber: created.Number,
			Description:   initialDepositDescription,
			Type:          transaction.TypeDeposit,
			Amount:        c.Create.InitialBalance,
			Branch:        c.Create.Branch,
		})
		if err != nil {
			return err
		}
	}

	c.Account = created
	return nil
}
