package user

import (
	"context"
	"strings"
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

func (w *Writer) Create(_ context.Context, create *UserCreate) (uuid.UUID, error) {
	key := strings.ToLower(create.Email)
	if _, taken := w.table.byEmail[key]; taken {
		return uuid.Nil, ErrEmailTaken
	}

	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	w.table.rows[id] = User{
		ID:           id,
		FullName:     create.FullName,
		Email:        create.Email,
		PhoneNumber:  create.PhoneNumber,
		DateOfBirth:  create.DateOfBirth,
		Address:      create.Address,
		PasswordHash: create.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}
	w.table.byEmail[key] = id
	return id, nil
}

// IssueToken records a new bearer token for userID.
func (w *Writer) IssueToken(_ context.Context, userID uuid.UUID) (string, error) {
	if _, ok := w.table.rows[userID]; !ok {
		return "", ErrNotFound
	}
	token, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	w.table.tokens[token.String()] = userID
	return token.String(), nil
}
