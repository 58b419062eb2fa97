package transaction

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const (
	TypeTransfer = "TRANSFER"
	TypeDeposit  = "DEPOSIT"

	StatusSuccess = "SUCCESS"
)

// Transaction is one ledger line on one account. A transfer writes one line per side;
// Amount is negative on the debited side.
type Transaction struct {
	ID            uuid.UUID
	AccountNumber string
	Date          time.Time
	Description   string
	Type          string
	Amount        decimal.Decimal
	OtherParty    string
	Branch        string
	Status        string
}

// TransactionCreate is the input for recording a ledger line.
type TransactionCreate struct {
	AccountNumber string
	Date          time.Time
	Description   string
	Type          string
	Amount        decimal.Decimal
	OtherParty    string
	Branch        string
}

// Table holds ledger lines in insertion order.
type Table struct {
	rows []Transaction
}

func NewTable() *Table {
	return &Table{}
}

// Clone copies the table so a writer can stage changes.
func (t *Table) Clone() *Table {
	return &Table{rows: append([]Transaction(nil), t.rows...)}
}
