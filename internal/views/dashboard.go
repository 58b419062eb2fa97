package views

import (
	"context"

	"github.com/carson-networks/bank-client/internal/observable"
	"github.com/carson-networks/bank-client/internal/router"
	"github.com/carson-networks/bank-client/internal/service"
)

// NoAccountsText is shown on the dashboard when the user has no accounts.
const NoAccountsText = "No accounts found. Please create an account."

// Dashboard summarises the user's accounts and links to the money pages.
type Dashboard struct {
	Accounts *observable.Observable[[]service.Account]
	Loading  *observable.Observable[bool]

	deps     Deps
	accounts accountLister
}

func NewDashboard(deps Deps, accounts accountLister) *Dashboard {
	return &Dashboard{
		Accounts: observable.New([]service.Account{}),
		Loading:  observable.New(false),
		deps:     deps,
		accounts: accounts,
	}
}

func (v *Dashboard) Init(ctx context.Context) {
	_ = v.Load(ctx)
}

// Load fetches the user's accounts.
func (v *Dashboard) Load(ctx context.Context) error {
	if err := v.deps.requireToken(ctx); err != nil {
		return err
	}

	v.Loading.Set(true)
	defer v.Loading.Set(false)

	accounts, err := loadAccounts(ctx, v.deps, router.PathDashboard, v.accounts)
	if err != nil {
		return err
	}
	v.Accounts.Set(accounts)
	return nil
}

// EmptyText is NoAccountsText when there is nothing to list, otherwise "".
func (v *Dashboard) EmptyText() string {
	if len(v.Accounts.Get()) == 0 {
		return NoAccountsText
	}
	return ""
}

func (v *Dashboard) ShowTransfer(ctx context.Context) error {
	return v.deps.Nav.Go(ctx, router.PathTransfer)
}

func (v *Dashboard) ShowStatements(ctx context.Context) error {
	return v.deps.Nav.Go(ctx, router.PathStatements)
}

func (v *Dashboard) ShowCreateAccount(ctx context.Context) error {
	return v.deps.Nav.Go(ctx, router.PathCreateAccount)
}
