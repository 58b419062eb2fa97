package form

import (
	"context"
	"errors"

	"github.com/carson-networks/bank-client/internal/observable"
)

// ErrInvalid is returned by Submit when a field rejected its value and nothing was sent.
var ErrInvalid = errors.New("form: validation failed")

// Control is the type-erased view of a Field that a Form drives.
type Control interface {
	Name() string
	Check() bool
	Reset()
	Errors() []Message
	SetText(s string) error
}

// Form groups fields behind a single submit lifecycle.
type Form struct {
	fields  []Control
	Loading *observable.Observable[bool]
}

// New creates a form over the given fields, in display order.
func New(fields ...Control) *Form {
	return &Form{
		fields:  fields,
		Loading: observable.New(false),
	}
}

// Fields returns the form's fields in display order.
func (f *Form) Fields() []Control {
	return f.fields
}

// Field looks a field up by name.
func (f *Form) Field(name string) (Control, bool) {
	for _, field := range f.fields {
		if field.Name() == name {
			return field, true
		}
	}
	return nil, false
}

// ValidateAll checks every field, so every error is shown, and reports whether all passed.
func (f *Form) ValidateAll() bool {
	valid := true
	for _, field := range f.fields {
		if !field.Check() {
			valid = false
		}
	}
	return valid
}

// Errors returns the current errors keyed by field name, omitting clean fields.
func (f *Form) Errors() map[string][]Message {
	out := make(map[string][]Message)
	for _, field := range f.fields {
		if errs := field.Errors(); len(errs) > 0 {
			out[field.Name()] = errs
		}
	}
	return out
}

// Submit validates every field and runs action only when all pass. Loading is set
// for the duration of action and always cleared afterwards.
func (f *Form) Submit(ctx context.Context, action func(ctx context.Context) error) error {
	if !f.ValidateAll() {
		return ErrInvalid
	}

	f.Loading.Set(true)
	defer f.Loading.Set(false)

	return action(ctx)
}

// Reset restores every field to its initial value.
func (f *Form) Reset() {
	for _, field := range f.fields {
		field.Reset()
	}
}
