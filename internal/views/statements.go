package views

import (
	"context"
	"errors"

	"github.com/carson-networks/bank-client/internal/observable"
	"github.com/carson-networks/bank-client/internal/router"
	"github.com/carson-networks/bank-client/internal/service"
)

// ErrNoAccountSelected is returned by Export before an account is chosen.
var ErrNoAccountSelected = errors.New("views: no account selected")

const msgSelectAccount = "Please select an account."

// Statements lists the transactions of a chosen account.
type Statements struct {
	Accounts     *observable.Observable[[]service.Option]
	Selected     *observable.Observable[string]
	Transactions *observable.Observable[[]service.Transaction]
	// Visible is true while Transactions holds a successfully loaded statement.
	Visible *observable.Observable[bool]
	Loading *observable.Observable[bool]

	deps         Deps
	accounts     accountLister
	transactions statementFetcher
	preselect    string
}

func NewStatements(deps Deps, accounts accountLister, transactions statementFetcher) *Statements {
	return &Statements{
		Accounts:     observable.New([]service.Option{}),
		Selected:     observable.New(""),
		Transactions: observable.New([]service.Transaction{}),
		Visible:      observable.New(false),
		Loading:      observable.New(false),
		deps:         deps,
		accounts:     accounts,
		transactions: transactions,
	}
}

// Preselect makes Init load accountNumber's statement once the account choices are in.
func (v *Statements) Preselect(accountNumber string) *Statements {
	v.preselect = accountNumber
	return v
}

func (v *Statements) Init(ctx context.Context) {
	if err := v.LoadAccounts(ctx); err != nil {
		return
	}
	if v.preselect != "" {
		_ = v.SelectAccount(ctx, v.preselect)
	}
}

// LoadAccounts fills Accounts with the user's accounts.
func (v *Statements) LoadAccounts(ctx context.Context) error {
	if err := v.deps.requireToken(ctx); err != nil {
		return err
	}

	v.Loading.Set(true)
	defer v.Loading.Set(false)

	accounts, err := loadAccounts(ctx, v.deps, router.PathStatements, v.accounts)
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

// SelectAccount loads the statement of accountNumber. An empty selection hides the
// results without a request.
func (v *Statements) SelectAccount(ctx context.Context, accountNumber string) error {
	v.Selected.Set(accountNumber)
	if accountNumber == "" {
		v.Visible.Set(false)
		v.Transactions.Set([]service.Transaction{})
		return nil
	}

	logData := v.deps.logData(router.PathStatements)
	logData.AddData("accountNumber", accountNumber)

	v.Loading.Set(true)
	defer v.Loading.Set(false)

	stopTimer := logData.AddTiming("statementMs")
	txs, err := v.transactions.Statement(ctx, accountNumber)
	stopTimer()
	if err != nil {
		logData.Log().WithError(err).Info("Views.Statements.Error")
		v.deps.Messenger.Error(failureText(err, msgLoadStatementsFailed))
		v.Visible.Set(false)
		return err
	}

	v.Transactions.Set(txs)
	v.Visible.Set(true)
	return nil
}

// Export downloads the selected account's statement as a PDF and returns its path.
func (v *Statements) Export(ctx context.Context) (string, error) {
	number := v.Selected.Get()
	if number == "" {
		v.deps.Messenger.Error(msgSelectAccount)
		return "", ErrNoAccountSelected
	}

	v.Loading.Set(true)
	defer v.Loading.Set(false)

	return exportStatement(ctx, v.deps, v.transactions, number)
}
