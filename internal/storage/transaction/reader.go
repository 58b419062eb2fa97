package transaction

import "context"

type Reader struct {
	table *Table
}

func NewReader(table *Table) *Reader {
	return &Reader{table: table}
}

// ListByAccount returns the account's ledger lines oldest first.
func (r *Reader) ListByAccount(_ context.Context, accountNumber string) ([]*Transaction, error) {
	var result []*Transaction
	for i := range r.table.rows {
		if r.table.rows[i].AccountNumber == accountNumber {
			tx := r.table.rows[i]
			result = append(result, &tx)
		}
	}
	return result, nil
}

func (r *Reader) Count(_ context.Context) int {
	return len(r.table.rows)
}
