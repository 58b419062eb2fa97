package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/carson-networks/bank-client/internal/form"
	"github.com/carson-networks/bank-client/internal/views"
)

// formFlag binds a command-line flag to a form field.
type formFlag struct {
	flag  string
	field string
	usage string
	value string
}

func bindFormFlags(cmd *cobra.Command, flags []*formFlag) {
	for _, f := range flags {
		cmd.Flags().StringVar(&f.value, f.flag, f.value, f.usage)
	}
}

// fill types every flag value into its field, so field rules run as they would on input.
func fill(f *form.Form, flags []*formFlag) error {
	for _, fl := range flags {
		control, ok := f.Field(fl.field)
		if !ok {
			return fmt.Errorf("form has no field %q", fl.field)
		}
		if err := control.SetText(fl.value); err != nil {
			return fmt.Errorf("--%s: %w", fl.flag, err)
		}
	}
	return nil
}

type submitter interface {
	Submit(ctx context.Context) error
}

// submit runs the page's submit action and turns its outcome into a command result.
func submit(ctx context.Context, out io.Writer, v views.View) error {
	s, ok := v.(submitter)
	f := formOf(v)
	if !ok || f == nil {
		return errors.New("this page has no form to submit")
	}

	err := s.Submit(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, form.ErrInvalid):
		fmt.Fprintln(out, "Please correct the following:")
		renderFormErrors(out, f)
		return errInvalidInput
	case errors.Is(err, views.ErrNotSignedIn):
		return errNotSignedIn
	default:
		return errReported
	}
}
