package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-client/internal/handlers"
	"github.com/carson-networks/bank-client/internal/logging"
)

const dateFormat = "2006-01-02"

// StatementInput is the Huma input for reading an account statement.
type StatementInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token"`
	AccountNumber string `path:"accountNumber" doc:"Account number"`
}

// TransactionResponse is one statement line.
type TransactionResponse struct {
	ID              string  `json:"id"`
	Date            string  `json:"date" doc:"Posting date, YYYY-MM-DD"`
	Description     string  `json:"description"`
	TransactionType string  `json:"transactionType"`
	Amount          float64 `json:"amount" doc:"Negative when the account was debited"`
	OtherParty      string  `json:"otherParty"`
	Status          string  `json:"status"`
}

// StatementResponse wraps the statement lines.
type StatementResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// StatementOutput is the response for reading a statement.
type StatementOutput struct {
	Body StatementResponse
}

// StatementHandler handles GET /transactions/{accountNumber}/statement.
type StatementHandler struct {
	Auth         authenticator
	Transactions statementService
}

func NewStatementHandler(auth authenticator, svc statementService) *StatementHandler {
	return &StatementHandler{Auth: auth, Transactions: svc}
}

// Register registers the statement endpoint with the Huma API.
func (h *StatementHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-statement",
		Method:      http.MethodGet,
		Path:        handlers.TransactionServicePrefix + "/transactions/{accountNumber}/statement",
		Summary:     "Get an account statement",
		Description: "Lists every transaction on an account the caller owns, oldest first.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *StatementHandler) handle(ctx context.Context, input *StatementInput) (*StatementOutput, error) {
	logData := logging.GetLogData(ctx)

	owner, err := handlers.Authenticate(ctx, h.Auth, input.Authorization)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("statementMs")
	}
	txs, err := h.Transactions.Statement(ctx, owner, input.AccountNumber)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, handlers.FromDomain(err)
	}

	resp := StatementResponse{Transactions: make([]TransactionResponse, 0, len(txs))}
	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, TransactionResponse{
			ID:              tx.ID.String(),
			Date:            tx.Date.Format(dateFormat),
			Description:     tx.Description,
			TransactionType: tx.Type,
			Amount:          tx.Amount.InexactFloat64(),
			OtherParty:      tx.OtherParty,
			Status:          tx.Status,
		})
	}

	if logData != nil {
		logData.AddData("accountNumber", input.AccountNumber)
		logData.AddData("transactionCount", len(txs))
	}

	return &StatementOutput{Body: resp}, nil
}
