package views

import (
	"context"

	"github.com/carson-networks/bank-client/internal/observable"
	"github.com/carson-networks/bank-client/internal/router"
	"github.com/carson-networks/bank-client/internal/service"
)

// MyAccounts lists the user's accounts and downloads their statements.
type MyAccounts struct {
	Accounts *observable.Observable[[]service.Account]
	Loading  *observable.Observable[bool]

	deps         Deps
	accounts     accountLister
	transactions statementFetcher
}

func NewMyAccounts(deps Deps, accounts accountLister, transactions statementFetcher) *MyAccounts {
	return &MyAccounts{
		Accounts:     observable.New([]service.Account{}),
		Loading:      observable.New(false),
		deps:         deps,
		accounts:     accounts,
		transactions: transactions,
	}
}

func (v *MyAccounts) Init(ctx context.Context) {
	_ = v.Load(ctx)
}

// Load fetches the user's accounts.
func (v *MyAccounts) Load(ctx context.Context) error {
	if err := v.deps.requireToken(ctx); err != nil {
		return err
	}

	v.Loading.Set(true)
	defer v.Loading.Set(false)

	accounts, err := loadAccounts(ctx, v.deps, router.PathMyAccounts, v.accounts)
	if err != nil {
		return err
	}
	v.Accounts.Set(accounts)
	return nil
}

// DownloadStatement saves Account_Statement_<accountNumber>.pdf and returns its path.
func (v *MyAccounts) DownloadStatement(ctx context.Context, accountNumber string) (string, error) {
	v.Loading.Set(true)
	defer v.Loading.Set(false)

	return exportStatement(ctx, v.deps, v.transactions, accountNumber)
}
