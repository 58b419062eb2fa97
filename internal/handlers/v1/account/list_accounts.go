package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-client/internal/handlers"
	"github.com/carson-networks/bank-client/internal/logging"
)

// ListAccountsInput is the Huma input for listing the caller's accounts.
type ListAccountsInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token"`
}

// ListAccountsResponse wraps the caller's accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ListAccountsOutput is the response for listing accounts.
type ListAccountsOutput struct {
	Body ListAccountsResponse
}

// ListAccountsHandler handles GET /accounts/user.
type ListAccountsHandler struct {
	Auth     authenticator
	Accounts accountLister
}

func NewListAccountsHandler(auth authenticator, svc accountLister) *ListAccountsHandler {
	return &ListAccountsHandler{Auth: auth, Accounts: svc}
}

// Register registers the list accounts endpoint with the Huma API.
func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        handlers.AccountServicePrefix + "/accounts/user",
		Summary:     "List the caller's accounts",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, input *ListAccountsInput) (*ListAccountsOutput, error) {
	logData := logging.GetLogData(ctx)

	owner, err := handlers.Authenticate(ctx, h.Auth, input.Authorization)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listAccountsMs")
	}
	accounts, err := h.Accounts.ListAccounts(ctx, owner)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, handlers.FromDomain(err)
	}

	resp := ListAccountsResponse{Accounts: make([]AccountResponse, 0, len(accounts))}
	for _, a := range accounts {
		resp.Accounts = append(resp.Accounts, toResponse(a))
	}

	if logData != nil {
		logData.AddData("accountCount", len(accounts))
	}

	return &ListAccountsOutput{Body: resp}, nil
}
