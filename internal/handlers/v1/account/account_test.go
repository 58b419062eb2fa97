package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/bank-client/internal/bank"
	"github.com/carson-networks/bank-client/internal/handlers"
	storageaccount "github.com/carson-networks/bank-client/internal/storage/account"
)

const accountsPrefix = handlers.AccountServicePrefix + "/accounts"

type mockAuth struct {
	mock.Mock
}

func (m *mockAuth) Authenticate(ctx context.Context, token string) (uuid.UUID, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type mockAccounts struct {
	mock.Mock
}

func (m *mockAccounts) CreateAccount(ctx context.Context, owner uuid.UUID, open bank.AccountOpen) (*storageaccount.Account, error) {
	args := m.Called(ctx, owner, open)
	a, _ := args.Get(0).(*storageaccount.Account)
	return a, args.Error(1)
}

func (m *mockAccounts) ListAccounts(ctx context.Context, owner uuid.UUID) ([]*storageaccount.Account, error) {
	args := m.Called(ctx, owner)
	a, _ := args.Get(0).([]*storageaccount.Account)
	return a, args.Error(1)
}

func newTestAPI(t *testing.T, auth *mockAuth, svc *mockAccounts) humatest.TestAPI {
	t.Helper()
	handlers.UseMessageErrors()
	_, api := humatest.New(t)
	NewCreateAccountHandler(auth, svc).Register(api)
	NewListAccountsHandler(auth, svc).Register(api)
	return api
}

func signedIn(owner uuid.UUID) *mockAuth {
	auth := new(mockAuth)
	auth.On("Authenticate", mock.Anything, "tok").Return(owner, nil)
	return auth
}

func TestCreateAccount_Created(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	svc := new(mockAccounts)
	svc.On("CreateAccount", mock.Anything, owner, mock.MatchedBy(func(o bank.AccountOpen) bool {
		return o.Type == "SAVINGS" && o.Currency == "INR" && o.Branch == "Central" &&
			o.InitialDeposit.Equal(decimal.NewFromInt(1500))
	})).Return(&storageaccount.Account{
		Number:   "1000000001",
		OwnerID:  owner,
		Type:     "SAVINGS",
		Currency: "INR",
		Branch:   "Central",
		Balance:  decimal.NewFromInt(1500),
		IsActive: true,
	}, nil)

	resp := newTestAPI(t, signedIn(owner), svc).Post(accountsPrefix+"/createaccount",
		"Authorization: Bearer tok",
		map[string]any{"accountType": "SAVINGS", "currency": "INR", "branch": "Central", "initialDeposit": 1500},
	)

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body AccountResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, AccountResponse{
		AccountNumber: "1000000001",
		AccountType:   "SAVINGS",
		Currency:      "INR",
		Branch:        "Central",
		Balance:       1500,
		IsActive:      true,
	}, body)
	svc.AssertExpectations(t)
}

func TestCreateAccount_Validation(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())

	tests := []struct {
		name string
		body map[string]any
	}{
		{"deposit below minimum", map[string]any{"accountType": "SAVINGS", "currency": "INR", "branch": "Central", "initialDeposit": 500}},
		{"unknown account type", map[string]any{"accountType": "CURRENT", "currency": "INR", "branch": "Central", "initialDeposit": 1500}},
		{"unknown currency", map[string]any{"accountType": "SAVINGS", "currency": "GBP", "branch": "Central", "initialDeposit": 1500}},
		{"short branch", map[string]any{"accountType": "SAVINGS", "currency": "INR", "branch": "ab", "initialDeposit": 1500}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockAccounts)
			resp := newTestAPI(t, signedIn(owner), svc).Post(accountsPrefix+"/createaccount", "Authorization: Bearer tok", tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
			svc.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCreateAccount_Unauthorized(t *testing.T) {
	auth := new(mockAuth)
	auth.On("Authenticate", mock.Anything, "stale").Return(uuid.Nil, bank.ErrUnauthorized)
	svc := new(mockAccounts)

	resp := newTestAPI(t, auth, svc).Post(accountsPrefix+"/createaccount",
		"Authorization: Bearer stale",
		map[string]any{"accountType": "SAVINGS", "currency": "INR", "branch": "Central", "initialDeposit": 1500},
	)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	svc.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func TestListAccounts(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	svc := new(mockAccounts)
	svc.On("ListAccounts", mock.Anything, owner).Return([]*storageaccount.Account{
		{Number: "1000000001", Type: "SAVINGS", Currency: "INR", Branch: "Central", Balance: decimal.RequireFromString("1250.75"), IsActive: true},
		{Number: "1000000002", Type: "FD", Currency: "USD", Branch: "North", Balance: decimal.NewFromInt(5000), IsActive: true},
	}, nil)

	resp := newTestAPI(t, signedIn(owner), svc).Get(accountsPrefix+"/user", "Authorization: Bearer tok")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Accounts, 2)
	assert.Equal(t, "1000000001", body.Accounts[0].AccountNumber)
	assert.Equal(t, 1250.75, body.Accounts[0].Balance)
	assert.Equal(t, "FD", body.Accounts[1].AccountType)
}

func TestListAccounts_EmptyIsArray(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	svc := new(mockAccounts)
	svc.On("ListAccounts", mock.Anything, owner).Return(nil, nil)

	resp := newTestAPI(t, signedIn(owner), svc).Get(accountsPrefix+"/user", "Authorization: Bearer tok")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Accounts []AccountResponse `json:"accounts"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.NotNil(t, body.Accounts)
	assert.Empty(t, body.Accounts)
}

func TestListAccounts_ServiceError(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	svc := new(mockAccounts)
	svc.On("ListAccounts", mock.Anything, owner).Return(nil, errors.New("boom"))

	resp := newTestAPI(t, signedIn(owner), svc).Get(accountsPrefix+"/user", "Authorization: Bearer tok")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
