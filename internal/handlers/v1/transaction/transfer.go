package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-client/internal/bank"
	"github.com/carson-networks/bank-client/internal/handlers"
	"github.com/carson-networks/bank-client/internal/logging"
)

const transferMessage = "Transfer successful"

// TransferInput is the Huma input for moving money between accounts.
type TransferInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token"`
	Body          TransferBody
}

// TransferBody is the transfer order.
type TransferBody struct {
	TransactionType   string  `json:"transactionType" enum:"TRANSFER" doc:"Always TRANSFER"`
	FromAccountNumber string  `json:"fromAccountNumber" minLength:"1" doc:"Debited account, owned by the caller"`
	ToAccountNumber   string  `json:"toAccountNumber" minLength:"5" doc:"Credited account"`
	Amount            float64 `json:"amount" exclusiveMinimum:"0" doc:"Amount to move"`
	Description       string  `json:"description" minLength:"5" doc:"Narrative shown on both statements"`
	Branch            string  `json:"branch" minLength:"3" doc:"Branch initiating the transfer"`
}

// TransferResponse confirms the transfer.
type TransferResponse struct {
	Message string `json:"message"`
}

// TransferOutput is the response for a transfer.
type TransferOutput struct {
	Body TransferResponse
}

// TransferHandler handles POST /transactions/transact.
type TransferHandler struct {
	Auth         authenticator
	Transactions transferService
}

func NewTransferHandler(auth authenticator, svc transferService) *TransferHandler {
	return &TransferHandler{Auth: auth, Transactions: svc}
}

// Register registers the transfer endpoint with the Huma API.
func (h *TransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transfer",
		Method:      http.MethodPost,
		Path:        handlers.TransactionServicePrefix + "/transactions/transact",
		Summary:     "Transfer money",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *TransferHandler) handle(ctx context.Context, input *TransferInput) (*TransferOutput, error) {
	logData := logging.GetLogData(ctx)

	owner, err := handlers.Authenticate(ctx, h.Auth, input.Authorization)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("transferMs")
	}
	err = h.Transactions.Transfer(ctx, owner, bank.TransferOrder{
		From:        input.Body.FromAccountNumber,
		To:          input.Body.ToAccountNumber,
		Amount:      decimal.NewFromFloat(input.Body.Amount),
		Description: input.Body.Description,
		Branch:      input.Body.Branch,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, handlers.FromDomain(err)
	}

	if logData != nil {
		logData.AddData("fromAccount", input.Body.FromAccountNumber)
		logData.AddData("toAccount", input.Body.ToAccountNumber)
	}

	return &TransferOutput{Body: TransferResponse{Message: transferMessage}}, nil
}
