package storage

import (
	"github.com/carson-networks/bank-client/internal/storage/account"
	"github.com/carson-networks/bank-client/internal/storage/transaction"
	"github.com/carson-networks/bank-client/internal/storage/user"
)

type Reader struct {
	Users        *user.Reader
	Accounts     *account.Reader
	Transactions *transaction.Reader
}

func newReader(t *tables) *Reader {
	return &Reader{
		Users:        user.NewReader(t.users),
		Accounts:     account.NewReader(t.accounts),
		Transactions: transaction.NewReader(t.transactions),
	}
}
