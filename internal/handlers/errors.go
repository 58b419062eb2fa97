package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bank-client/internal/bank"
	"github.com/carson-networks/bank-client/internal/operator/actions"
	"github.com/carson-networks/bank-client/internal/storage/account"
	"github.com/carson-networks/bank-client/internal/storage/user"
)

const (
	UserServicePrefix        = "/userservice/api/v1"
	AccountServicePrefix     = "/accountservice/api/v1"
	TransactionServicePrefix = "/transactionservice/api/v1"
)

// MessageError is the error body every sandbox endpoint returns: {"message": "..."}.
type MessageError struct {
	Status  int      `json:"-"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

func (e *MessageError) Error() string {
	return e.Message
}

func (e *MessageError) GetStatus() int {
	return e.Status
}

// NewError builds a MessageError; validation details are folded into the message.
func NewError(status int, msg string, errs ...error) huma.StatusError {
	var details []string
	for _, err := range errs {
		if err != nil {
			details = append(details, err.Error())
		}
	}
	if len(details) > 0 && status < http.StatusInternalServerError {
		msg = msg + ": " + strings.Join(details, "; ")
	}
	return &MessageError{Status: status, Message: msg, Errors: details}
}

// UseMessageErrors makes huma render every error as a MessageError.
func UseMessageErrors() {
	huma.NewError = NewError
}

// FromDomain maps business errors onto HTTP errors.
func FromDomain(err error) error {
	switch {
	case errors.Is(err, bank.ErrInvalidCredentials):
		return huma.Error401Unauthorized("Invalid email or password")
	case errors.Is(err, bank.ErrUnauthorized):
		return huma.Error401Unauthorized("Unauthorized")
	case errors.Is(err, bank.ErrForbidden), errors.Is(err, actions.ErrNotOwner):
		return huma.Error403Forbidden("Access denied")
	case errors.Is(err, user.ErrNotFound):
		return huma.Error404NotFound("User not found")
	case errors.Is(err, account.ErrNotFound):
		return huma.Error404NotFound("Account not found")
	case errors.Is(err, user.ErrEmailTaken):
		return huma.Error409Conflict("Email already registered")
	case errors.Is(err, actions.ErrInsufficientFunds):
		return huma.Error422UnprocessableEntity("Insufficient balance")
	case errors.Is(err, actions.ErrSameAccount):
		return huma.Error400BadRequest("Cannot transfer to the same account")
	case errors.Is(err, actions.ErrInvalidAmount):
		return huma.Error400BadRequest("Amount must be positive")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return huma.Error503ServiceUnavailable("Request cancelled")
	default:
		return huma.Error500InternalServerError("Internal server error")
	}
}

// Authenticator resolves bearer tokens.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (uuid.UUID, error)
}

// Authenticate checks an Authorization header of the form "Bearer <token>".
func Authenticate(ctx context.Context, auth Authenticator, header string) (uuid.UUID, error) {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return uuid.Nil, huma.Error401Unauthorized("Unauthorized")
	}
	id, err := auth.Authenticate(ctx, token)
	if err != nil {
		return uuid.Nil, huma.Error401Unauthorized("Unauthorized")
	}
	return id, nil
}
