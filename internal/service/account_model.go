package service

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// AccountType is the product kind of an account.
type AccountType string

const (
	AccountTypeSavings AccountType = "SAVINGS"
	AccountTypeSalary  AccountType = "SALARY"
	AccountTypeFD      AccountType = "FD"
	AccountTypeRD      AccountType = "RD"
)

// Currency is an ISO currency code accepted for new accounts.
type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// Option is a selectable value with its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// AccountTypes lists the account types offered on account creation.
var AccountTypes = []Option{
	{Value: string(AccountTypeSavings), Label: "Savings Account"},
	{Value: string(AccountTypeSalary), Label: "Salary Account"},
	{Value: string(AccountTypeFD), Label: "Fixed Deposit"},
	{Value: string(AccountTypeRD), Label: "Recurring Deposit"},
}

// Currencies lists the currencies offered on account creation.
var Currencies = []Option{
	{Value: string(CurrencyINR), Label: "INR - Indian Rupee"},
	{Value: string(CurrencyUSD), Label: "USD - US Dollar"},
	{Value: string(CurrencyEUR), Label: "EUR - Euro"},
}

// OptionValues returns the values of opts in order.
func OptionValues(opts []Option) []string {
	values := make([]string, len(opts))
	for i, o := range opts {
		values[i] = o.Value
	}
	return values
}

// Account is an account as returned by the account service.
type Account struct {
	AccountNumber string          `json:"accountNumber"`
	AccountType   AccountType     `json:"accountType"`
	Currency      Currency        `json:"currency"`
	Branch        string          `json:"branch"`
	Balance       decimal.Decimal `json:"balance"`
	IsActive      bool            `json:"isActive"`
}

// UnmarshalJSON accepts accountNumber as a JSON string or number.
func (a *Account) UnmarshalJSON(data []byte) error {
	type plain Account
	var raw struct {
		plain
		AccountNumber FlexID `json:"accountNumber"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*a = Account(raw.plain)
	a.AccountNumber = raw.AccountNumber.String()
	return nil
}

// Label renders the account the way selection lists show it.
func (a Account) Label() string {
	return a.AccountNumber + " (" + string(a.AccountType) + ")"
}

// CreateAccountRequest is the account creation payload.
type CreateAccountRequest struct {
	AccountType    AccountType `json:"accountType"`
	Currency       Currency    `json:"currency"`
	Branch         string      `json:"branch"`
	InitialDeposit float64     `json:"initialDeposit"`
}
