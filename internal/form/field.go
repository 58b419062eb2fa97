package form

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-client/internal/observable"
)

// Field is one input of a form: an observable value, its observable error list,
// and the rules that produce those errors. Setting the value re-validates it.
type Field[T any] struct {
	name      string
	initial   T
	value     *observable.Observable[T]
	errors    *observable.Observable[[]Message]
	rules     []Rule[T]
	normalize func(T) T
	parse     func(string) (T, error)
}

// Option configures a Field.
type Option[T any] func(*Field[T])

// WithRules appends validation rules, evaluated in order; the first failure wins.
func WithRules[T any](rules ...Rule[T]) Option[T] {
	return func(f *Field[T]) {
		f.rules = append(f.rules, rules...)
	}
}

// WithNormalizer sets the function applied to the value before validation and submission.
func WithNormalizer[T any](normalize func(T) T) Option[T] {
	return func(f *Field[T]) {
		f.normalize = normalize
	}
}

// WithParser sets how SetText turns user input into a value.
func WithParser[T any](parse func(string) (T, error)) Option[T] {
	return func(f *Field[T]) {
		f.parse = parse
	}
}

// Trimmed strips surrounding whitespace before validation and submission.
func Trimmed() Option[string] {
	return WithNormalizer(strings.TrimSpace)
}

// NewField creates a field holding initial and subscribes its validator to value changes.
func NewField[T any](name string, initial T, opts ...Option[T]) *Field[T] {
	f := &Field[T]{
		name:    name,
		initial: initial,
		value:   observable.New(initial),
		errors:  observable.New[[]Message](nil),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.value.Subscribe(func(v T) {
		f.Validate(v)
	})

	return f
}

// NewTextField creates a string field that accepts any text input.
func NewTextField(name, initial string, opts ...Option[string]) *Field[string] {
	opts = append([]Option[string]{WithParser(func(s string) (string, error) { return s, nil })}, opts...)
	return NewField(name, initial, opts...)
}

// NewNumberField creates an optional decimal field; empty input means no value.
func NewNumberField(name string, opts ...Option[*decimal.Decimal]) *Field[*decimal.Decimal] {
	opts = append([]Option[*decimal.Decimal]{WithParser(parseDecimal)}, opts...)
	return NewField[*decimal.Decimal](name, nil, opts...)
}

func parseDecimal(s string) (*decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("not a number: %q", s)
	}
	return &d, nil
}

// Name returns the field name.
func (f *Field[T]) Name() string {
	return f.name
}

// Get returns the raw current value.
func (f *Field[T]) Get() T {
	return f.value.Get()
}

// Set stores a new raw value, which triggers validation.
func (f *Field[T]) Set(v T) {
	f.value.Set(v)
}

// SetText parses user input and stores it.
func (f *Field[T]) SetText(s string) error {
	if f.parse == nil {
		return fmt.Errorf("field %s does not accept text input", f.name)
	}
	v, err := f.parse(s)
	if err != nil {
		return fmt.Errorf("field %s: %w", f.name, err)
	}
	f.Set(v)
	return nil
}

// Value returns the normalised current value, as it would be submitted.
func (f *Field[T]) Value() T {
	return f.normalized(f.value.Get())
}

func (f *Field[T]) normalized(v T) T {
	if f.normalize == nil {
		return v
	}
	return f.normalize(v)
}

// Validate checks v against the rules and replaces the error list with zero or one entries.
func (f *Field[T]) Validate(v T) bool {
	v = f.normalized(v)
	for _, rule := range f.rules {
		if msg := rule(v); msg != nil {
			f.errors.Set([]Message{*msg})
			return false
		}
	}
	f.errors.Set(nil)
	return true
}

// Check validates the current value.
func (f *Field[T]) Check() bool {
	return f.Validate(f.value.Get())
}

// Errors returns the current error list.
func (f *Field[T]) Errors() []Message {
	return f.errors.Get()
}

// Observable exposes the value container for subscribers.
func (f *Field[T]) Observable() *observable.Observable[T] {
	return f.value
}

// ErrorList exposes the error container for subscribers.
func (f *Field[T]) ErrorList() *observable.Observable[[]Message] {
	return f.errors
}

// Reset restores the initial value and clears errors.
func (f *Field[T]) Reset() {
	f.value.Set(f.initial)
	f.errors.Set(nil)
}
