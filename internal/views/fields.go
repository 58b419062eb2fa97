package views

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-client/internal/form"
	"github.com/carson-networks/bank-client/internal/service"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

func emailField(opts ...form.Option[string]) *form.Field[string] {
	opts = append(opts, form.WithRules(
		form.Required("Email Required", "Please enter your email address."),
		form.Matches(emailPattern, "Invalid Email", "Please enter a valid email address (e.g., user@domain.com)."),
	))
	return form.NewTextField("email", "", opts...)
}

func passwordField(requiredDetail string, opts ...form.Option[string]) *form.Field[string] {
	opts = append(opts, form.WithRules(
		form.Required("Password Required", requiredDetail),
		form.MinLength(6, "Password Too Short", "Password must be at least 6 characters long."),
	))
	return form.NewTextField("password", "", opts...)
}

func branchField() *form.Field[string] {
	return form.NewTextField("branch", "", form.Trimmed(), form.WithRules(
		form.Required("Branch Required", "Please enter a branch name."),
		form.MinLength(3, "Branch Name Too Short", "Branch name must be at least 3 characters long after trimming."),
	))
}

func accountTypeField() *form.Field[string] {
	return form.NewTextField("accountType", "", form.WithRules(
		form.Required("Account Type Required", "Please select an account type."),
		form.OneOf(service.OptionValues(service.AccountTypes), "Invalid Account Type", "Please select a listed account type."),
	))
}

func currencyField() *form.Field[string] {
	return form.NewTextField("currency", string(service.CurrencyINR), form.WithRules(
		form.Required("Currency Required", "Please select a currency."),
		form.OneOf(service.OptionValues(service.Currencies), "Invalid Currency", "Please select a listed currency."),
	))
}

func initialDepositField() *form.Field[*decimal.Decimal] {
	return form.NewNumberField("initialDeposit", form.WithRules(
		form.RequiredNumber("Initial Deposit Required", "Please enter an initial deposit amount."),
		form.MinNumber(decimal.NewFromInt(1000), "Initial Deposit Too Low", "Initial deposit must be at least 1000."),
	))
}

func amountField() *form.Field[*decimal.Decimal] {
	return form.NewNumberField("amount", form.WithRules(
		form.RequiredNumber("Amount Required", "Please enter an amount to transfer."),
		form.MinNumber(decimal.NewFromInt(1), "Amount Too Low", "Transfer amount must be at least 1."),
	))
}
