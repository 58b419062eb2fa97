package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
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

func (w *Writer) Insert(_ context.Context, create *TransactionCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	date := create.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	w.table.rows = append(w.table.rows, Transaction{
		ID:            id,
		AccountNumber: create.AccountNumber,
		Date:          date,
		Description:   create.Description,
		Type:          create.Type,
		Amount:        create.Amount,
		OtherParty:    create.OtherParty,
		Branch:        create.Branch,
		Status:        StatusSuccess,
	})
	return id, nil
}
