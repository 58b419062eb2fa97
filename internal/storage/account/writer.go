package account

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type Writer struct {
	table *Table
	Reader
}

func NewWriter(table *Table) *Writer {
	return &Writer{
		table:  table,
		Reader: Reader{table: table},
	}
}

// Create opens an active account under the next free 10-digit number.
func (w *Writer) Create(_ context.Context, create *AccountCreate) (*Account, error) {
	number := strconv.FormatInt(w.table.next, 10)
	w.table.next++

	a := Account{
		Number:    number,
		OwnerID:   create.OwnerID,
		Type:      create.Type,
		Currency:  create.Currency,
		Branch:    create.Branch,
		Balance:   create.InitialBalance,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	w.table.rows[number] = a
	w.table.order = append(w.table.order, number)
	return &a, nil
}

func (w *Writer) UpdateBalance(_ context.Context, number string, balance decimal.Decimal) error {
	a, ok := w.table.rows[number]
	if !ok {
		return ErrNotFound
	}
	a.Balance = balance
	w.table.rows[number] = a
	return nil
}
