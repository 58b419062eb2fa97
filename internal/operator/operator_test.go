package operator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/bank-client/internal/logging"
	"github.com/carson-networks/bank-client/internal/operator/actions"
	"github.com/carson-networks/bank-client/internal/storage"
	"github.com/carson-networks/bank-client/internal/storage/account"
	"github.com/carson-networks/bank-client/internal/storage/transaction"
)

type recordingObserver struct {
	mu    sync.Mutex
	names []string
	errs  []error
}

func (r *recordingObserver) ObserveAction(name string, err error, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names = append(r.names, name)
	r.errs = append(r.errs, err)
}

type funcAction struct {
	name string
	fn   func(ctx context.Context, w *storage.Writer) error
}

func (f *funcAction) Name() string { return f.name }

func (f *funcAction) Perform(ctx context.Context, w *storage.Writer) error {
	return f.fn(ctx, w)
}

func newDelegator(t *testing.T) (*OperatorDelegator, *storage.Storage, *recordingObserver) {
	t.Helper()
	s := storage.NewStorage()
	obs := &recordingObserver{}
	d := NewOperatorDelegator(s, 1, logging.Discard(), obs)
	d.Start()
	t.Cleanup(d.Stop)
	return d, s, obs
}

func openAccount(t *testing.T, d *OperatorDelegator, owner uuid.UUID, balance int64) *account.Account {
	t.Helper()
	action := &actions.CreateAccount{Create: account.AccountCreate{
		OwnerID:        owner,
		Type:           "SAVINGS",
		Currency:       "INR",
		Branch:         "MG Road",
		InitialBalance: decimal.NewFromInt(balance),
	}}
	require.NoError(t, d.Process(context.Background(), action))
	return action.Account
}

func TestOperatorDelegator_RunsActionsInOrder(t *testing.T) {
	d, _, obs := newDelegator(t)

	var mu sync.Mutex
	var seen []int
	for i := 0; i < 5; i++ {
		i := i
		require.NoError(t, d.Process(context.Background(), &funcAction{name: "step", fn: func(context.Context, *storage.Writer) error {
			mu.Lock()
			seen = append(seen, i)
			mu.Unlock()
			return nil
		}}))
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4}, seen)
	assert.Len(t, obs.names, 5)
}

func TestOperatorDelegator_ErrorRollsBack(t *testing.T) {
	d, s, obs := newDelegator(t)
	boom := errors.New("boom")

	err := d.Process(context.Background(), &funcAction{name: "failing", fn: func(ctx context.Context, w *storage.Writer) error {
		if _, err := w.Account.Create(ctx, &account.AccountCreate{Type: "FD"}); err != nil {
			return err
		}
		return boom
	}})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, s.Read(context.Background()).Accounts.Count(context.Background()))
	assert.Equal(t, []error{boom}, obs.errs)
}

func TestOperatorDelegator_ProcessAfterStop(t *testing.T) {
	d, _, _ := newDelegator(t)
	d.Stop()

	err := d.Process(context.Background(), &funcAction{name: "late", fn: func(context.Context, *storage.Writer) error { return nil }})

	assert.ErrorIs(t, err, ErrStopped)
}

func TestCreateAccount_RecordsInitialDeposit(t *testing.T) {
	d, s, _ := newDelegator(t)
	ctx := context.Background()

	created := openAccount(t, d, uuid.Must(uuid.NewV4()), 1500)

	txs, err := s.Read(ctx).Transactions.ListByAccount(ctx, created.Number)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, transaction.TypeDeposit, txs[0].Type)
	assert.True(t, txs[0].Amount.Equal(decimal.NewFromInt(1500)))
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()
	owner := uuid.Must(uuid.NewV4())
	other := uuid.Must(uuid.NewV4())

	t.Run("moves money and writes both sides", func(t *testing.T) {
		d, s, _ := newDelegator(t)
		from := openAccount(t, d, owner, 2000)
		to := openAccount(t, d, other, 1000)

		require.NoError(t, d.Process(ctx, &actions.Transfer{
			OwnerID: owner, From: from.Number, To: to.Number,
			Amount: decimal.RequireFromString("250.50"), Description: "Rent", Branch: "Fort",
		}))

		r := s.Read(ctx)
		gotFrom, _ := r.Accounts.FindByNumber(ctx, from.Number)
		gotTo, _ := r.Accounts.FindByNumber(ctx, to.Number)
		assert.True(t, gotFrom.Balance.Equal(decimal.RequireFromString("1749.50")))
		assert.True(t, gotTo.Balance.Equal(decimal.RequireFromString("1250.50")))

		fromLines, _ := r.Transactions.ListByAccount(ctx, from.Number)
		require.Len(t, fromLines, 2)
		assert.True(t, fromLines[1].Amount.Equal(decimal.RequireFromString("-250.50")))
		assert.Equal(t, to.Number, fromLines[1].OtherParty)
		assert.Equal(t, transaction.TypeTransfer, fromLines[1].Type)
	})

	failures := []struct {
		name     string
		mutate   func(a *actions.Transfer)
		expected error
	}{
		{"insufficient funds", func(a *actions.Transfer) { a.Amount = decimal.NewFromInt(5000) }, actions.ErrInsufficientFunds},
		{"zero amount", func(a *actions.Transfer) { a.Amount = decimal.Zero }, actions.ErrInvalidAmount},
		{"same account", func(a *actions.Transfer) { a.To = a.From }, actions.ErrSameAccount},
		{"not owner", func(a *actions.Transfer) { a.OwnerID = other }, actions.ErrNotOwner},
		{"unknown destination", func(a *actions.Transfer) { a.To = "9999999999" }, account.ErrNotFound},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			d, s, _ := newDelegator(t)
			from := openAccount(t, d, owner, 2000)
			to := openAccount(t, d, other, 1000)
			action := &actions.Transfer{OwnerID: owner, From: from.Number, To: to.Number, Amount: decimal.NewFromInt(100)}
			tt.mutate(action)

			assert.ErrorIs(t, d.Process(ctx, action), tt.expected)

			gotFrom, _ := s.Read(ctx).Accounts.FindByNumber(ctx, from.Number)
			assert.True(t, gotFrom.Balance.Equal(decimal.NewFromInt(2000)))
		})
	}
}
