package user

import (
	"context"
	"strings"

	"github.com/gofrs/uuid/v5"
)

type Reader struct {
	table *Table
}

func NewReader(table *Table) *Reader {
	return &Reader{table: table}
}

func (r *Reader) FindByID(_ context.Context, id uuid.UUID) (*User, error) {
	u, ok := r.table.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

// FindByEmail matches case-insensitively.
func (r *Reader) FindByEmail(ctx context.Context, email string) (*User, error) {
	id, ok := r.table.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

// FindByToken resolves an issued bearer token to its user id.
func (r *Reader) FindByToken(_ context.Context, token string) (uuid.UUID, error) {
	id, ok := r.table.tokens[token]
	if !ok {
		return uuid.Nil, ErrNotFound
	}
	return id, nil
}

func (r *Reader) Count(_ context.Context) int {
	return len(r.table.rows)
}
