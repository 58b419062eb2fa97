package service

import (
	"net/url"
	"strings"

	"github.com/carson-networks/bank-client/internal/config"
	"github.com/carson-networks/bank-client/internal/httpclient"
)

// Service holds the clients for every backend service.
type Service struct {
	User        *UserService
	Account     *AccountService
	Transaction *TransactionService
}

// NewService creates a Service talking to the base URLs in env through client.
func NewService(client *httpclient.Client, env *config.Config) *Service {
	return &Service{
		User:        NewUserService(client, env.UserServiceURL),
		Account:     NewAccountService(client, env.AccountServiceURL),
		Transaction: NewTransactionService(client, env.TransactionServiceURL),
	}
}

func endpoint(base string, segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return strings.TrimRight(base, "/") + "/" + strings.Join(escaped, "/")
}
