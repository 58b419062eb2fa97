package views

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-client/internal/form"
	"github.com/carson-networks/bank-client/internal/observable"
	"github.com/carson-networks/bank-client/internal/router"
	"github.com/carson-networks/bank-client/internal/service"
)

const (
	msgTransferComplete = "Transfer completed successfully!"
	msgTransferFailed   = "Transfer failed. Please try again."
)

type accountLister interface {
	ListAccounts(ctx context.Context) ([]service.Account, error)
}

type transferrer interface {
	Transfer(ctx context.Context, req service.TransferRequest) error
}

// Transfer moves money from one of the user's accounts to any account number.
type Transfer struct {
	FromAccount *form.Field[string]
	ToAccount   *form.Field[string]
	Amount      *form.Field[*decimal.Decimal]
	Branch      *form.Field[string]
	Description *form.Field[string]
	Form        *form.Form

	// Accounts are the source account choices.
	Accounts *observable.Observable[[]service.Option]

	deps         Deps
	accounts     accountLister
	transactions transferrer
}

func NewTransfer(deps Deps, accounts accountLister, transactions transferrer) *Transfer {
	v := &Transfer{
		FromAccount: form.NewTextField("fromAccount", "", form.WithRules(
			form.Required("From Account Required", "Please select a source account."),
		)),
		ToAccount: form.NewTextField("toAccount", "", form.Trimmed(), form.WithRules(
			form.Required("To Account Required", "Please enter a destination account number."),
			form.MinLength(5, "Invalid Account Number", "Account number must be at least 5 digits long."),
		)),
		Amount: amountField(),
		Branch: branchField(),
		Description: form.NewTextField("description", "", form.Trimmed(), form.WithRules(
			form.Required("Description Required", "Please enter a transfer description."),
			form.MinLength(5, "Description Too Short", "Description must be at least 5 characters long after trimming."),
		)),
		Accounts:     observable.New([]service.Option{}),
		deps:         deps,
		accounts:     accounts,
		transactions: transactions,
	}
	v.Form = form.New(v.FromAccount, v.ToAccount, v.Amount, v.Branch, v.Description)
	return v
}

func (v *Transfer) Init(ctx context.Context) {
	_ = v.LoadAccounts(ctx)
}

// LoadAccounts fills Accounts with the user's accounts.
func (v *Transfer) LoadAccounts(ctx context.Context) error {
	if err := v.deps.requireToken(ctx); err != nil {
		return err
	}

	v.Form.Loading.Set(true)
	defer v.Form.Loading.Set(false)

	accounts, err := loadAccounts(ctx, v.deps, router.PathTransfer, v.accounts)
	if err != nil {
		return err
	}

	options := make([]service.Option, len(accounts))
	for i, a := range accounts {
		options[i] = service.Option{Value: a.AccountNumber, Label: a.Label()}
	}
	v.Accounts.Set(options)
	return nil
}

// Submit sends the transfer, then resets the form and opens the dashboard.
func (v *Transfer) Submit(ctx context.Context) error {
	logData := v.deps.logData(router.PathTransfer)

	err := v.Form.Submit(ctx, func(ctx context.Context) error {
		stopTimer := logData.AddTiming("transferMs")
		defer stopTimer()
		return v.transactions.Transfer(ctx, service.TransferRequest{
			FromAccountNumber: v.FromAccount.Value(),
			ToAccountNumber:   v.ToAccount.Value(),
			Amount:            v.Amount.Value().InexactFloat64(),
			Description:       v.Description.Value(),
			Branch:            v.Branch.Value(),
		})
	})
	if errors.Is(err, form.ErrInvalid) {
		return err
	}
	if err != nil {
		logData.Log().WithError(err).Info("Views.Transfer.Error")
		v.deps.Messenger.Error(failureText(err, msgTransferFailed))
		return err
	}

	logData.Log().Info("Views.Transfer.Complete")
	v.deps.Messenger.Success(msgTransferComplete)
	v.Form.Reset()
	return v.deps.Nav.Go(ctx, router.PathDashboard)
}

// loadAccounts fetches the account list, reporting failures through the messenger.
func loadAccounts(ctx context.Context, d Deps, view string, lister accountLister) ([]service.Account, error) {
	logData := d.logData(view)
	stopTimer := logData.AddTiming("listAccountsMs")
	accounts, err := lister.ListAccounts(ctx)
	stopTimer()
	if err != nil {
		logData.Log().WithError(err).Info("Views.LoadAccounts.Error")
		d.Messenger.Error(failureText(err, msgLoadAccountsFailed))
		return nil, err
	}
	logData.AddData("accounts", len(accounts))
	logData.Log().Debug("Views.LoadAccounts.Complete")
	return accounts, nil
}
