package service

import (
	"context"
	"net/http"

	"github.com/carson-networks/bank-client/internal/httpclient"
)

// AccountService calls the account service.
type AccountService struct {
	client *httpclient.Client
	base   string
}

func NewAccountService(client *httpclient.Client, base string) *AccountService {
	return &AccountService{client: client, base: base}
}

// CreateAccount opens a new account for the signed-in user.
func (s *AccountService) CreateAccount(ctx context.Context, req CreateAccountRequest) error {
	return s.client.Do(ctx, http.MethodPost, endpoint(s.base, "accounts", "createaccount"), req, nil)
}

// ListAccounts returns the signed-in user's accounts; a missing list is empty.
func (s *AccountService) ListAccounts(ctx context.Context) ([]Account, error) {
	var body struct {
		Accounts []Account `json:"accounts"`
	}
	if err := s.client.Do(ctx, http.MethodGet, endpoint(s.base, "accounts", "user"), nil, &body); err != nil {
		return nil, err
	}
	if body.Accounts == nil {
		return []Account{}, nil
	}
	return body.Accounts, nil
}
