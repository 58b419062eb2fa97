package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carson-networks/bank-client/internal/router"
	"github.com/carson-networks/bank-client/internal/views"
)

func newSignInCmd(r *root) *cobra.Command {
	flags := []*formFlag{
		{flag: "email", field: "email", usage: "Account email"},
		{flag: "password", field: "password", usage: "Account password"},
	}

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in and keep the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			v, err := open[*views.SignIn](ctx, r, router.PathSignIn)
			if err != nil {
				return err
			}
			if err := fill(v.Form, flags); err != nil {
				return err
			}
			if err := submit(ctx, cmd.OutOrStdout(), v); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed in.")
			render(cmd.OutOrStdout(), r.app.Current.Get())
			return nil
		},
	}
	bindFormFlags(cmd, flags)
	return cmd
}

func newSignUpCmd(r *root) *cobra.Command {
	flags := []*formFlag{
		{flag: "full-name", field: "fullName", usage: "Full name"},
		{flag: "email", field: "email", usage: "Email address"},
		{flag: "phone", field: "phoneNumber", usage: "Phone number, 10 to 15 digits"},
		{flag: "date-of-birth", field: "dateOfBirth", usage: "Date of birth (optional)"},
		{flag: "password", field: "password", usage: "Password, at least 6 characters"},
		{flag: "address", field: "address", usage: "Postal address"},
	}

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			v, err := open[*views.SignUp](ctx, r, router.PathSignUp)
			if err != nil {
				return err
			}
			if err := fill(v.Form, flags); err != nil {
				return err
			}
			return submit(ctx, cmd.OutOrStdout(), v)
		},
	}
	bindFormFlags(cmd, flags)
	return cmd
}

func newSignOutCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.app.SignOut(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func newProfileCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the signed-in user's profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := open[*views.Profile](cmd.Context(), r, router.PathProfile)
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
}
