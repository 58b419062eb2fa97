package account

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

type Reader struct {
	table *Table
}

func NewReader(table *Table) *Reader {
	return &Reader{table: table}
}

func (r *Reader) FindByNumber(_ context.Context, number string) (*Account, error) {
	a, ok := r.table.rows[number]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

// ListByOwner returns ownerID's accounts oldest first.
func (r *Reader) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*Account, error) {
	var result []*Account
	for _, number := range r.table.order {
		a := r.table.rows[number]
		if a.OwnerID == ownerID {
			result = append(result, &a)
		}
	}
	return result, nil
}

func (r *Reader) Count(_ context.Context) int {
	return len(r.table.rows)
}
