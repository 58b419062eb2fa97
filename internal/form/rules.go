package form

import (
	"regexp"
	"slices"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Message is a single field-level validation error.
type Message struct {
	Summary string `json:"summary"`
	Detail  string `json:"detail"`
}

// Rule inspects a normalised value and returns a Message when the value is rejected.
type Rule[T any] func(value T) *Message

func fail(summary, detail string) *Message {
	return &Message{Summary: summary, Detail: detail}
}

// Required rejects the empty string.
func Required(summary, detail string) Rule[string] {
	return func(value string) *Message {
		if value == "" {
			return fail(summary, detail)
		}
		return nil
	}
}

// MinLength rejects strings shorter than n characters.
func MinLength(n int, summary, detail string) Rule[string] {
	return func(value string) *Message {
		if utf8.RuneCountInString(value) < n {
			return fail(summary, detail)
		}
		return nil
	}
}

// Matches rejects strings that do not match re.
func Matches(re *regexp.Regexp, summary, detail string) Rule[string] {
	return func(value string) *Message {
		if !re.MatchString(value) {
			return fail(summary, detail)
		}
		return nil
	}
}

// OneOf rejects strings outside the allowed set.
func OneOf(allowed []string, summary, detail string) Rule[string] {
	return func(value string) *Message {
		if !slices.Contains(allowed, value) {
			return fail(summary, detail)
		}
		return nil
	}
}

// RequiredNumber rejects a missing number.
func RequiredNumber(summary, detail string) Rule[*decimal.Decimal] {
	return func(value *decimal.Decimal) *Message {
		if value == nil {
			return fail(summary, detail)
		}
		return nil
	}
}

// MinNumber rejects numbers below min. A missing number passes; pair with RequiredNumber.
func MinNumber(min decimal.Decimal, summary, detail string) Rule[*decimal.Decimal] {
	return func(value *decimal.Decimal) *Message {
		if value != nil && value.LessThan(min) {
			return fail(summary, detail)
		}
		return nil
	}
}
