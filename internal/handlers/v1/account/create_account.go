package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-client/internal/bank"
	"github.com/carson-networks/bank-client/internal/handlers"
	"github.com/carson-networks/bank-client/internal/logging"
)

// CreateAccountInput is the Huma input for opening an account.
type CreateAccountInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token"`
	Body          CreateAccountBody
}

// CreateAccountBody is the request body for opening an account.
type CreateAccountBody struct {
	AccountType    string  `json:"accountType" enum:"SAVINGS,SALARY,FD,RD" doc:"Account product"`
	Currency       string  `json:"currency" enum:"INR,USD,EUR" doc:"Account currency"`
	Branch         string  `json:"branch" minLength:"3" doc:"Home branch"`
	InitialDeposit float64 `json:"initialDeposit" minimum:"1000" doc:"Opening balance"`
}

// CreateAccountOutput is the response for opening an account.
type CreateAccountOutput struct {
	Body AccountResponse
}

// CreateAccountHandler handles POST /accounts/createaccount.
type CreateAccountHandler struct {
	Auth     authenticator
	Accounts accountCreator
}

func NewCreateAccountHandler(auth authenticator, svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{Auth: auth, Accounts: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-account",
		Method:        http.MethodPost,
		Path:          handlers.AccountServicePrefix + "/accounts/createaccount",
		Summary:       "Open an account",
		Description:   "Opens an account for the caller and records the initial deposit.",
		DefaultStatus: http.StatusCreated,
		Tags:          []string{"Accounts"},
	}, h.handle)
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	owner, err := handlers.Authenticate(ctx, h.Auth, input.Authorization)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createAccountMs")
	}
	acct, err := h.Accounts.CreateAccount(ctx, owner, bank.AccountOpen{
		Type:           input.Body.AccountType,
		Currency:       input.Body.Currency,
		Branch:         input.Body.Branch,
		InitialDeposit: decimal.NewFromFloat(input.Body.InitialDeposit),
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, handlers.FromDomain(err)
	}

	if logData != nil {
		logData.AddData("accountNumber", acct.Number)
	}

	return &CreateAccountOutput{Body: toResponse(acct)}, nil
}
