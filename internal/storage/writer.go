package storage

import (
	"errors"
	"sync"

	"github.com/carson-networks/bank-client/internal/storage/account"
	"github.com/carson-networks/bank-client/internal/storage/transaction"
	"github.com/carson-networks/bank-client/internal/storage/user"
)

// ErrTxDone is returned when a finished writer is committed or rolled back again.
var ErrTxDone = errors.New("storage: transaction already finished")

type Writer struct {
	staged  *tables
	commit  func(*tables)
	release func()
	once    sync.Once

	User        *user.Writer
	Account     *account.Writer
	Transaction *transaction.Writer
}

func newWriter(staged *tables, commit func(*tables), release func()) *Writer {
	return &Writer{
		staged:      staged,
		commit:      commit,
		release:     release,
		User:        user.NewWriter(staged.users),
		Account:     account.NewWriter(staged.accounts),
		Transaction: transaction.NewWriter(staged.transactions),
	}
}

// Commit publishes the staged changes.
func (w *Writer) Commit() error {
	done := true
	w.once.Do(func() {
		done = false
		w.commit(w.staged)
		w.release()
	})
	if done {
		return ErrTxDone
	}
	return nil
}

// Rollback discards the staged changes.
func (w *Writer) Rollback() error {
	done := true
	w.once.Do(func() {
		done = false
		w.release()
	})
	if done {
		return ErrTxDone
	}
	return nil
}
