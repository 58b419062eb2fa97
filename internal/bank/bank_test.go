package bank

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/bank-client/internal/logging"
	"github.com/carson-networks/bank-client/internal/operator"
	"github.com/carson-networks/bank-client/internal/operator/actions"
	"github.com/carson-networks/bank-client/internal/storage"
	"github.com/carson-networks/bank-client/internal/storage/account"
	"github.com/carson-networks/bank-client/internal/storage/user"
)

func newTestBank(t *testing.T) *Bank {
	t.Helper()
	store := storage.NewStorage()
	delegator := operator.NewOperatorDelegator(store, 1, logging.Discard(), nil)
	delegator.Start()
	t.Cleanup(delegator.Stop)
	return NewBank(store, delegator)
}

func register(t *testing.T, b *Bank, email string) uuid.UUID {
	t.Helper()
	id, err := b.Users.Register(context.Background(), Registration{
		FullName: "Asha Rao",
		Email:    email,
		Password: "secret1",
		Address:  "12 MG Road",
	})
	require.NoError(t, err)
	return id
}

func TestUserService_SignInFlow(t *testing.T) {
	ctx := context.Background()
	b := newTestBank(t)
	id := register(t, b, "asha@bank.in")

	_, err := b.Users.Register(ctx, Registration{Email: "ASHA@bank.in", Password: "secret1"})
	assert.ErrorIs(t, err, user.ErrEmailTaken)

	_, _, err = b.Users.SignIn(ctx, "asha@bank.in", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = b.Users.SignIn(ctx, "nobody@bank.in", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	token, userID, err := b.Users.SignIn(ctx, "asha@bank.in", "secret1")
	require.NoError(t, err)
	assert.Equal(t, id, userID)
	assert.NotEmpty(t, token)

	resolved, err := b.Users.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, id, resolved)
	_, err = b.Users.Authenticate(ctx, "forged")
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = b.Users.Authenticate(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthorized)

	profile, err := b.Users.GetUser(ctx, id, id)
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", profile.FullName)
	_, err = b.Users.GetUser(ctx, uuid.Must(uuid.NewV4()), id)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAccountsAndTransfers(t *testing.T) {
	ctx := context.Background()
	b := newTestBank(t)
	asha := register(t, b, "asha@bank.in")
	ravi := register(t, b, "ravi@bank.in")

	savings, err := b.Accounts.CreateAccount(ctx, asha, AccountOpen{Type: "SAVINGS", Currency: "INR", Branch: "MG Road", InitialDeposit: decimal.NewFromInt(5000)})
	require.NoError(t, err)
	salary, err := b.Accounts.CreateAccount(ctx, ravi, AccountOpen{Type: "SALARY", Currency: "INR", Branch: "Fort", InitialDeposit: decimal.NewFromInt(1000)})
	require.NoError(t, err)

	accounts, err := b.Accounts.ListAccounts(ctx, asha)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, savings.Number, accounts[0].Number)

	require.NoError(t, b.Transactions.Transfer(ctx, asha, TransferOrder{
		From: savings.Number, To: salary.Number, Amount: decimal.NewFromInt(1200), Description: "Rent share", Branch: "MG Road",
	}))
	err = b.Transactions.Transfer(ctx, ravi, TransferOrder{From: savings.Number, To: salary.Number, Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, actions.ErrNotOwner)

	statement, err := b.Transactions.Statement(ctx, asha, savings.Number)
	require.NoError(t, err)
	require.Len(t, statement, 2)
	assert.Equal(t, "Rent share", statement[1].Description)
	assert.True(t, statement[1].Amount.Equal(decimal.NewFromInt(-1200)))

	_, err = b.Transactions.Statement(ctx, ravi, savings.Number)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = b.Transactions.Statement(ctx, asha, "0000000000")
	assert.ErrorIs(t, err, account.ErrNotFound)
}
