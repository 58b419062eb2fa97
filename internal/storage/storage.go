package storage

import (
	"context"
	"sync"

	"github.com/carson-networks/bank-client/internal/storage/account"
	"github.com/carson-networks/bank-client/internal/storage/transaction"
	"github.com/carson-networks/bank-client/internal/storage/user"
)

// tables is one consistent version of the data. A committed version is never mutated;
// writers stage changes on a clone and swap it in on commit.
type tables struct {
	users        *user.Table
	accounts     *account.Table
	transactions *transaction.Table
}

func (t *tables) clone() *tables {
	return &tables{
		users:        t.users.Clone(),
		accounts:     t.accounts.Clone(),
		transactions: t.transactions.Clone(),
	}
}

// Storage is the in-memory database of the sandbox backend.
type Storage struct {
	mu      sync.RWMutex
	current *tables
	writeMu sync.Mutex
}

func NewStorage() *Storage {
	return &Storage{
		current: &tables{
			users:        user.NewTable(),
			accounts:     account.NewTable(),
			transactions: transaction.NewTable(),
		},
	}
}

// Read returns a reader over the latest committed version.
func (s *Storage) Read(_ context.Context) *Reader {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newReader(s.current)
}

// Write starts a transaction. Only one writer is open at a time; it must be finished
// with Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.writeMu.Lock()

	s.mu.RLock()
	staged := s.current.clone()
	s.mu.RUnlock()

	return newWriter(staged, s.commit, s.writeMu.Unlock), nil
}

func (s *Storage) commit(staged *tables) {
	s.mu.Lock()
	s.current = staged
	s.mu.Unlock()
}
