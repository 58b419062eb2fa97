package service

import (
	"context"
	"net/http"

	"github.com/carson-networks/bank-client/internal/httpclient"
)

// TransactionService calls the transaction service.
type TransactionService struct {
	client *httpclient.Client
	base   string
}

func NewTransactionService(client *httpclient.Client, base string) *TransactionService {
	return &TransactionService{client: client, base: base}
}

// Statement returns the transactions of one account, oldest first as the backend orders them.
func (s *TransactionService) Statement(ctx context.Context, accountNumber string) ([]Transaction, error) {
	var body struct {
		Transactions []Transaction `json:"transactions"`
	}
	if err := s.client.Do(ctx, http.MethodGet, endpoint(s.base, "transactions", accountNumber, "statement"), nil, &body); err != nil {
		return nil, err
	}
	if body.Transactions == nil {
		return []Transaction{}, nil
	}
	return body.Transactions, nil
}

// Transfer submits a transfer. TransactionType is forced to TRANSFER.
func (s *TransactionService) Transfer(ctx context.Context, req TransferRequest) error {
	req.TransactionType = TransactionTypeTransfer
	return s.client.Do(ctx, http.MethodPost, endpoint(s.base, "transactions", "transact"), req, nil)
}
