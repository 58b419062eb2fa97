package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-client/internal/form"
	"github.com/carson-networks/bank-client/internal/router"
	"github.com/carson-networks/bank-client/internal/service"
	"github.com/carson-networks/bank-client/internal/views"
)

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

func money(d *decimal.Decimal) string {
	if d == nil {
		return "0.00"
	}
	return d.StringFixed(2)
}

func renderAccounts(out io.Writer, accounts []service.Account) {
	tw := newTable(out)
	fmt.Fprintln(tw, "ACCOUNT\tTYPE\tCURRENCY\tBRANCH\tBALANCE\tACTIVE")
	for _, a := range accounts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%t\n",
			a.AccountNumber, a.AccountType, a.Currency, a.Branch, money(&a.Balance), a.IsActive)
	}
	_ = tw.Flush()
}

func renderTransactions(out io.Writer, txs []service.Transaction) {
	if len(txs) == 0 {
		fmt.Fprintln(out, "No transactions found for this account.")
		return
	}
	tw := newTable(out)
	fmt.Fprintln(tw, "DATE\tDESCRIPTION\tTYPE\tAMOUNT\tOTHER PARTY\tSTATUS")
	for _, tx := range txs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			tx.Date, tx.Description, tx.TransactionType, money(tx.Amount), tx.OtherParty, tx.Status)
	}
	_ = tw.Flush()
}

func renderOptions(out io.Writer, title string, opts []service.Option) {
	fmt.Fprintln(out, title+":")
	if len(opts) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	for _, o := range opts {
		fmt.Fprintf(out, "  %s\t%s\n", o.Value, o.Label)
	}
}

func renderProfile(out io.Writer, p service.Profile) {
	tw := newTable(out)
	fmt.Fprintf(tw, "Full name:\t%s\n", p.FullName)
	fmt.Fprintf(tw, "Email:\t%s\n", p.Email)
	fmt.Fprintf(tw, "Phone:\t%s\n", p.PhoneNumber)
	fmt.Fprintf(tw, "Date of birth:\t%s\n", p.DateOfBirth)
	fmt.Fprintf(tw, "Address:\t%s\n", p.Address)
	_ = tw.Flush()
}

// renderFormErrors lists every field error in display order.
func renderFormErrors(out io.Writer, f *form.Form) {
	for _, field := range f.Fields() {
		for _, msg := range field.Errors() {
			line := fmt.Sprintf("  %s: %s", field.Name(), msg.Summary)
			if msg.Detail != "" {
				line += ". " + msg.Detail
			}
			fmt.Fprintln(out, line)
		}
	}
}

func renderForm(out io.Writer, f *form.Form) {
	fmt.Fprintln(out, "Fields:")
	for _, field := range f.Fields() {
		fmt.Fprintf(out, "  %s\n", field.Name())
	}
	renderFormErrors(out, f)
}

func renderNav(out io.Writer) {
	labels := make([]string, 0, len(router.NavRoutes()))
	for _, r := range router.NavRoutes() {
		labels = append(labels, r.Path)
	}
	fmt.Fprintln(out, "Go to: "+strings.Join(labels, ", "))
}

// render prints the current page.
func render(out io.Writer, v views.View) {
	switch v := v.(type) {
	case *views.Dashboard:
		fmt.Fprintln(out, "Dashboard")
		if text := v.EmptyText(); text != "" {
			fmt.Fprintln(out, text)
			return
		}
		renderAccounts(out, v.Accounts.Get())
	case *views.MyAccounts:
		fmt.Fprintln(out, "My Accounts")
		renderAccounts(out, v.Accounts.Get())
	case *views.Statements:
		fmt.Fprintln(out, "Statements")
		renderOptions(out, "Accounts", v.Accounts.Get())
		if !v.Visible.Get() {
			return
		}
		fmt.Fprintf(out, "Account %s\n", v.Selected.Get())
		renderTransactions(out, v.Transactions.Get())
	case *views.Profile:
		fmt.Fprintln(out, "Profile")
		renderProfile(out, v.Profile.Get())
	case *views.SignIn:
		fmt.Fprintln(out, "Sign In")
		renderForm(out, v.Form)
	case *views.SignUp:
		fmt.Fprintln(out, "Sign Up")
		renderForm(out, v.Form)
	case *views.CreateAccount:
		fmt.Fprintln(out, "Create Account")
		renderOptions(out, "Account types", v.AccountTypes())
		renderOptions(out, "Currencies", v.Currencies())
		renderForm(out, v.Form)
	case *views.Transfer:
		fmt.Fprintln(out, "Transfer")
		renderOptions(out, "From accounts", v.Accounts.Get())
		renderForm(out, v.Form)
	}
}

// formOf returns the form behind a form page, or nil.
func formOf(v views.View) *form.Form {
	switch v := v.(type) {
	case *views.SignIn:
		return v.Form
	case *views.SignUp:
		return v.Form
	case *views.CreateAccount:
		return v.Form
	case *views.Transfer:
		return v.Form
	default:
		return nil
	}
}
