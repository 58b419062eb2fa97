package service

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// TransactionTypeTransfer is the only transaction type the client initiates.
const TransactionTypeTransfer = "TRANSFER"

// Transaction is one statement line as returned by the transaction service.
type Transaction struct {
	ID              FlexID           `json:"id,omitempty"`
	Date            string           `json:"date"`
	Description     string           `json:"description"`
	TransactionType string           `json:"transactionType"`
	Amount          *decimal.Decimal `json:"amount"`
	OtherParty      string           `json:"otherParty"`
	Status          string           `json:"status"`
}

// UnmarshalJSON accepts otherParty, an account number, as a JSON string or number.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	type plain Transaction
	var raw struct {
		plain
		OtherParty FlexID `json:"otherParty"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = Transaction(raw.plain)
	t.OtherParty = raw.OtherParty.String()
	return nil
}

// TransferRequest moves money between two accounts.
type TransferRequest struct {
	TransactionType   string  `json:"transactionType"`
	FromAccountNumber string  `json:"fromAccountNumber"`
	ToAccountNumber   string  `json:"toAccountNumber"`
	Amount            float64 `json:"amount"`
	Description       string  `json:"description"`
	Branch            string  `json:"branch"`
}
