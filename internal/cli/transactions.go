package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carson-networks/bank-client/internal/router"
	"github.com/carson-networks/bank-client/internal/views"
)

func newTransferCmd(r *root) *cobra.Command {
	flags := []*formFlag{
		{flag: "from", field: "fromAccount", usage: "Your account to debit"},
		{flag: "to", field: "toAccount", usage: "Account number to credit"},
		{flag: "amount", field: "amount", usage: "Amount, at least 1"},
		{flag: "branch", field: "branch", usage: "Branch initiating the transfer"},
		{flag: "description", field: "description", usage: "Narrative shown on both statements"},
	}

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer money to another account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			v, err := open[*views.Transfer](ctx, r, router.PathTransfer)
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

func newStatementsCmd(r *root) *cobra.Command {
	var (
		accountNumber string
		export        bool
	)

	cmd := &cobra.Command{
		Use:   "statements",
		Short: "Show an account's transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if export && accountNumber == "" {
				return errors.New("--export needs --account")
			}

			var params []router.Param
			if accountNumber != "" {
				params = append(params, router.WithParam(router.ParamAccountNumber, accountNumber))
			}
			v, err := open[*views.Statements](ctx, r, router.PathStatements, params...)
			if err != nil {
				return err
			}
			if r.messages.failed {
				return errReported
			}
			render(cmd.OutOrStdout(), v)

			if !export {
				return nil
			}
			path, err := v.Export(ctx)
			if err != nil {
				return errReported
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Statement saved to "+path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&accountNumber, "account", "a", "", "Account number to show")
	cmd.Flags().BoolVar(&export, "export", false, "Also save the statement as a PDF")
	return cmd
}
