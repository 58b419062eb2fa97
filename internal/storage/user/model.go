package user

import (
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
)

// User represents a registered user record.
type User struct {
	ID           uuid.UUID
	FullName     string
	Email        string
	PhoneNumber  string
	DateOfBirth  string
	Address      string
	PasswordHash []byte
	CreatedAt    time.Time
}

// UserCreate is the input for registering a user.
type UserCreate struct {
	FullName     string
	Email        string
	PhoneNumber  string
	DateOfBirth  string
	Address      string
	PasswordHash []byte
}

// Table holds users keyed by id, an email index and issued tokens.
type Table struct {
	rows    map[uuid.UUID]User
	byEmail map[string]uuid.UUID
	tokens  map[string]uuid.UUID
}

func NewTable() *Table {
	return &Table{
		rows:    map[uuid.UUID]User{},
		byEmail: map[string]uuid.UUID{},
		tokens:  map[string]uuid.UUID{},
	}
}

// Clone copies the table so a writer can stage changes.
func (t *Table) Clone() *Table {
	c := NewTable()
	for k, v := range t.rows {
		c.rows[k] = v
	}
	for k, v := range t.byEmail {
		c.byEmail[k] = v
	}
	for k, v := range t.tokens {
		c.tokens[k] = v
	}
	return c
}
