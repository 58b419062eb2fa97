package account

import (
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("account not found")

// firstNumber is the first 10-digit account number handed out.
const firstNumber int64 = 1000000001

// Account represents an account record.
type Account struct {
	Number    string
	OwnerID   uuid.UUID
	Type      string
	Currency  string
	Branch    string
	Balance   decimal.Decimal
	IsActive  bool
	CreatedAt time.Time
}

// AccountCreate is the input for opening a new account.
type AccountCreate struct {
	OwnerID        uuid.UUID
	Type           string
	Currency       string
	Branch         string
	InitialBalance decimal.Decimal
}

// Table holds accounts keyed by number, in creation order.
type Table struct {
	rows  map[string]Account
	order []string
	next  int64
}

func NewTable() *Table {
	return &Table{rows: map[string]Account{}, next: firstNumber}
}

// Clone copies the table so a writer can stage changes.
func (t *Table) Clone() *Table {
	c := &Table{
		rows:  make(map[string]Account, len(t.rows)),
		order: append([]string(nil), t.order...),
		next:  t.next,
	}
	for k, v := range t.rows {
		c.rows[k] = v
	}
	return c
}
