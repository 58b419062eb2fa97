package views

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-client/internal/form"
	"github.com/carson-networks/bank-client/internal/router"
	"github.com/carson-networks/bank-client/internal/service"
)

const (
	msgAccountCreated      = "Account created successfully!"
	msgAccountCreateFailed = "Error creating account. Please try again."
)

type accountCreator interface {
	CreateAccount(ctx context.Context, req service.CreateAccountRequest) error
}

// CreateAccount opens a new account for the signed-in user.
type CreateAccount struct {
	AccountType    *form.Field[string]
	Currency       *form.Field[string]
	Branch         *form.Field[string]
	InitialDeposit *form.Field[*decimal.Decimal]
	Form           *form.Form

	deps     Deps
	accounts accountCreator
}

func NewCreateAccount(deps Deps, accounts accountCreator) *CreateAccount {
	v := &CreateAccount{
		AccountType:    accountTypeField(),
		Currency:       currencyField(),
		Branch:         branchField(),
		InitialDeposit: initialDepositField(),
		deps:           deps,
		accounts:       accounts,
	}
	v.Form = form.New(v.AccountType, v.Currency, v.Branch, v.InitialDeposit)
	return v
}

func (v *CreateAccount) Init(context.Context) {}

// AccountTypes are the choices for AccountType.
func (v *CreateAccount) AccountTypes() []service.Option {
	return service.AccountTypes
}

// Currencies are the choices for Currency.
func (v *CreateAccount) Currencies() []service.Option {
	return service.Currencies
}

// Submit creates the account, then resets the form and opens the dashboard.
func (v *CreateAccount) Submit(ctx context.Context) error {
	logData := v.deps.logData(router.PathCreateAccount)

	err := v.Form.Submit(ctx, func(ctx context.Context) error {
		if err := v.deps.requireToken(ctx); err != nil {
			return err
		}

		stopTimer := logData.AddTiming("createAccountMs")
		defer stopTimer()
		return v.accounts.CreateAccount(ctx, service.CreateAccountRequest{
			AccountType:    service.AccountType(v.AccountType.Value()),
			Currency:       service.Currency(v.Currency.Value()),
			Branch:         v.Branch.Value(),
			InitialDeposit: v.InitialDeposit.Value().InexactFloat64(),
		})
	})
	if errors.Is(err, form.ErrInvalid) || errors.Is(err, ErrNotSignedIn) {
		return err
	}
	if err != nil {
		logData.Log().WithError(err).Info("Views.CreateAccount.Error")
		v.deps.Messenger.Error(failureText(err, msgAccountCreateFailed))
		return err
	}

	logData.Log().Info("Views.CreateAccount.Complete")
	v.deps.Messenger.Success(msgAccountCreated)
	v.Form.Reset()
	return v.deps.Nav.Go(ctx, router.PathDashboard)
}
