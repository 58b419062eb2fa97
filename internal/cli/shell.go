package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/carson-networks/bank-client/internal/router"
	"github.com/carson-networks/bank-client/internal/views"
)

const shellHelp = `Commands:
  go <page> [account-number]   open a page (dashboard, myaccounts, statements, createaccount, transfer, profile, signin, signup)
  set <field> <value>          type a value into a form field
  submit                       submit the current form
  select <account-number>      show a statement on the statements page
  export                       save the selected statement as a PDF
  download <account-number>    save a statement from my accounts
  show                         redraw the current page
  signout                      sign out
  quit                         leave the shell`

var errQuit = errors.New("quit")

func newShellCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Browse the bank interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &shell{root: r, out: cmd.OutOrStdout()}
			return s.run(cmd.Context(), cmd.InOrStdin())
		},
	}
}

type shell struct {
	root *root
	out  io.Writer
}

func (s *shell) run(ctx context.Context, in io.Reader) error {
	if err := s.root.app.Start(ctx, router.PathRoot); err != nil {
		return err
	}
	s.show()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(s.out, "bankctl:%s> ", s.root.app.Router.Current().Path)
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			break
		}
		err := s.exec(ctx, scanner.Text())
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil && !errors.Is(err, errReported) {
			fmt.Fprintln(s.out, "Error:", err)
		}
	}

	// Failures inside the shell were already shown.
	s.root.messages.failed = false
	return scanner.Err()
}

func (s *shell) show() {
	render(s.out, s.root.app.Current.Get())
}

func (s *shell) exec(ctx context.Context, line string) error {
	words := strings.Fields(line)
	if len(words) == 0 {
		return nil
	}
	app := s.root.app
	current := app.Current.Get()

	switch cmd, rest := words[0], words[1:]; cmd {
	case "quit", "exit":
		return errQuit
	case "help", "?":
		fmt.Fprintln(s.out, shellHelp)
	case "show":
		s.show()
	case "go":
		if len(rest) == 0 {
			return errors.New("usage: go <page> [account-number]")
		}
		var params []router.Param
		if len(rest) > 1 {
			params = append(params, router.WithParam(router.ParamAccountNumber, rest[1]))
		}
		if err := app.Navigate(ctx, rest[0], params...); err != nil {
			return err
		}
		s.show()
	case "set":
		f := formOf(current)
		if f == nil {
			return errors.New("this page has no form")
		}
		if len(rest) == 0 {
			return errors.New("usage: set <field> <value>")
		}
		field, ok := f.Field(rest[0])
		if !ok {
			return fmt.Errorf("no field %q", rest[0])
		}
		if err := field.SetText(strings.Join(rest[1:], " ")); err != nil {
			return err
		}
		renderFormErrors(s.out, f)
	case "submit":
		if err := submit(ctx, s.out, current); err != nil {
			return err
		}
		s.show()
	case "select":
		v, ok := current.(*views.Statements)
		if !ok {
			return errors.New("select works on the statements page")
		}
		account := ""
		if len(rest) > 0 {
			account = rest[0]
		}
		_ = v.SelectAccount(ctx, account)
		s.show()
	case "export":
		v, ok := current.(*views.Statements)
		if !ok {
			return errors.New("export works on the statements page")
		}
		path, err := v.Export(ctx)
		if err != nil {
			return errReported
		}
		fmt.Fprintln(s.out, "Statement saved to "+path)
	case "download":
		v, ok := current.(*views.MyAccounts)
		if !ok {
			return errors.New("download works on the myaccounts page")
		}
		if len(rest) == 0 {
			return errors.New("usage: download <account-number>")
		}
		path, err := v.DownloadStatement(ctx, rest[0])
		if err != nil {
			return errReported
		}
		fmt.Fprintln(s.out, "Statement saved to "+path)
	case "signout":
		if err := app.SignOut(ctx); err != nil {
			return err
		}
		s.show()
	default:
		return fmt.Errorf("unknown command %q, try help", cmd)
	}
	return nil
}
