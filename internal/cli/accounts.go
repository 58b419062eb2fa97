package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carson-networks/bank-client/internal/router"
	"github.com/carson-networks/bank-client/internal/views"
)

func newDashboardCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Summarise your accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := open[*views.Dashboard](cmd.Context(), r, router.PathDashboard)
			if err != nil {
				return err
			}
			if r.messages.failed {
				return errReported
			}
			render(cmd.OutOrStdout(), v)
			renderNav(cmd.OutOrStdout())
			return nil
		},
	}
}

func newAccountsCmd(r *root) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List your accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := open[*views.MyAccounts](cmd.Context(), r, router.PathMyAccounts)
			if err != nil {
				return err
			}
			if r.messages.failed {
				return errReported
			}
			render(cmd.OutOrStdout(), v)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "download <account-number>",
		Short: "Save an account statement as a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			v, err := open[*views.MyAccounts](ctx, r, router.PathMyAccounts)
			if err != nil {
				return err
			}
			path, err := v.DownloadStatement(ctx, args[0])
			if err != nil {
				return errReported
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Statement saved to "+path)
			return nil
		},
	})

	return cmd
}

func newCreateAccountCmd(r *root) *cobra.Command {
	flags := []*formFlag{
		{flag: "type", field: "accountType", usage: "Account type: SAVINGS, SALARY, FD or RD"},
		{flag: "currency", field: "currency", usage: "Currency: INR, USD or EUR", value: "INR"},
		{flag: "branch", field: "branch", usage: "Home branch"},
		{flag: "deposit", field: "initialDeposit", usage: "Initial deposit, at least 1000"},
	}

	cmd := &cobra.Command{
		Use:   "create-account",
		Short: "Open a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			v, err := open[*views.CreateAccount](ctx, r, router.PathCreateAccount)
			if err != nil {
				return err
			}
			if err := fill(v.Form, flags); err != nil {
				return err
			}
			if err := submit(ctx, cmd.OutOrStdout(), v); err != nil {
				return err
			}
			render(cmd.OutOrStdout(), r.app.Current.Get())
			return nil
		},
	}
	bindFormFlags(cmd, flags)
	return cmd
}
