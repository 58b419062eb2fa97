package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/bank-client/internal/config"
	"github.com/carson-networks/bank-client/internal/handlers"
	"github.com/carson-networks/bank-client/internal/httpclient"
	"github.com/carson-networks/bank-client/internal/logging"
	"github.com/carson-networks/bank-client/internal/service"
	"github.com/carson-networks/bank-client/internal/session"
)

type sandboxFixture struct {
	server  *httptest.Server
	svc     *service.Service
	session *session.MemoryStore
}

func newSandboxFixture(t *testing.T) *sandboxFixture {
	t.Helper()
	sandbox := NewSandbox(logging.Discard(), "0")
	sandbox.Start()
	t.Cleanup(sandbox.Stop)

	server := httptest.NewServer(sandbox.Rest.Router())
	t.Cleanup(server.Close)

	cfg := config.DefaultConfig()
	cfg.UserServiceURL = server.URL + "/userservice/api/v1"
	cfg.AccountServiceURL = server.URL + "/accountservice/api/v1"
	cfg.TransactionServiceURL = server.URL + "/transactionservice/api/v1"

	store := session.NewMemoryStore()
	client := httpclient.New(server.Client(), func() string { return session.Token(store) }, logging.Discard())

	return &sandboxFixture{
		server:  server,
		svc:     service.NewService(client, cfg),
		session: store,
	}
}

func (f *sandboxFixture) register(t *testing.T, email string) {
	t.Helper()
	require.NoError(t, f.svc.User.SignUp(context.Background(), service.SignUpRequest{
		FullName:    "Asha Rao",
		Email:       email,
		PhoneNumber: "9876543210",
		Password:    "secret1",
		Address:     "12 MG Road",
	}))
}

func (f *sandboxFixture) signIn(t *testing.T, email string) string {
	t.Helper()
	result, err := f.svc.User.SignIn(context.Background(), email, "secret1")
	require.NoError(t, err)
	require.NoError(t, f.session.Save(session.Session{Token: result.Token, UserID: string(result.UserID)}))
	return string(result.UserID)
}

func (f *sandboxFixture) open(t *testing.T, deposit float64) service.Account {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.svc.Account.CreateAccount(ctx, service.CreateAccountRequest{
		AccountType:    service.AccountTypeSavings,
		Currency:       service.CurrencyINR,
		Branch:         "Central",
		InitialDeposit: deposit,
	}))
	accounts, err := f.svc.Account.ListAccounts(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, accounts)
	return accounts[len(accounts)-1]
}

func TestSandbox_ClientRoundTrip(t *testing.T) {
	f := newSandboxFixture(t)
	ctx := context.Background()

	f.register(t, "asha@example.com")
	userID := f.signIn(t, "asha@example.com")

	profile, err := f.svc.User.GetUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", profile.FullName)

	from := f.open(t, 5000)
	to := f.open(t, 1000)
	assert.Equal(t, "1000000001", from.AccountNumber)
	assert.Equal(t, "1000000002", to.AccountNumber)

	require.NoError(t, f.svc.Transaction.Transfer(ctx, service.TransferRequest{
		FromAccountNumber: from.AccountNumber,
		ToAccountNumber:   to.AccountNumber,
		Amount:            1250.5,
		Description:       "Savings top up",
		Branch:            "Central",
	}))

	accounts, err := f.svc.Account.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.True(t, accounts[0].Balance.Equal(decimal.RequireFromString("3749.5")))
	assert.True(t, accounts[1].Balance.Equal(decimal.RequireFromString("2250.5")))

	txs, err := f.svc.Transaction.Statement(ctx, from.AccountNumber)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "Initial deposit", txs[0].Description)
	assert.Equal(t, "Savings top up", txs[1].Description)
	require.NotNil(t, txs[1].Amount)
	assert.True(t, txs[1].Amount.Equal(decimal.RequireFromString("-1250.5")))
	assert.Equal(t, to.AccountNumber, txs[1].OtherParty)
}

func TestSandbox_ErrorsReachClientAsMessages(t *testing.T) {
	f := newSandboxFixture(t)
	ctx := context.Background()

	f.register(t, "asha@example.com")

	err := f.svc.User.SignUp(ctx, service.SignUpRequest{
		FullName:    "Asha Again",
		Email:       "asha@example.com",
		PhoneNumber: "9876543210",
		Password:    "secret1",
		Address:     "12 MG Road",
	})
	var apiErr *httpclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Email already registered", apiErr.Message)
	assert.True(t, apiErr.FromServer)

	_, err = f.svc.User.SignIn(ctx, "asha@example.com", "wrong-password")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	f.signIn(t, "asha@example.com")
	from := f.open(t, 1000)
	to := f.open(t, 1000)
	err = f.svc.Transaction.Transfer(ctx, service.TransferRequest{
		FromAccountNumber: from.AccountNumber,
		ToAccountNumber:   to.AccountNumber,
		Amount:            5000,
		Description:       "Too much money",
		Branch:            "Central",
	})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Insufficient balance", apiErr.Message)

	err = f.svc.Transaction.Transfer(ctx, service.TransferRequest{
		FromAccountNumber: from.AccountNumber,
		ToAccountNumber:   "1000000099",
		Amount:            10,
		Description:       "Unknown payee",
		Branch:            "Central",
	})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Account not found", apiErr.Message)
}

func TestSandbox_OtherUsersAreForbidden(t *testing.T) {
	f := newSandboxFixture(t)
	ctx := context.Background()

	f.register(t, "asha@example.com")
	f.register(t, "ravi@example.com")
	ashaID := f.signIn(t, "asha@example.com")
	asha := f.open(t, 2000)

	f.signIn(t, "ravi@example.com")

	_, err := f.svc.User.GetUser(ctx, ashaID)
	assert.Equal(t, http.StatusForbidden, httpclient.StatusCode(err))

	_, err = f.svc.Transaction.Statement(ctx, asha.AccountNumber)
	assert.Equal(t, http.StatusForbidden, httpclient.StatusCode(err))

	accounts, err := f.svc.Account.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestSandbox_UnauthenticatedRequest(t *testing.T) {
	f := newSandboxFixture(t)

	_, err := f.svc.Account.ListAccounts(context.Background())

	assert.Equal(t, http.StatusUnauthorized, httpclient.StatusCode(err))
}

func TestSandbox_StatusAndMetrics(t *testing.T) {
	f := newSandboxFixture(t)
	f.register(t, "asha@example.com")

	resp, err := f.server.Client().Get(f.server.URL + "/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var report struct {
		Users int `json:"users"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, 1, report.Users)

	metricsResp, err := f.server.Client().Get(f.server.URL + "/metrics")
	require.NoError(t, err)
	defer metricsResp.Body.Close()
	body, err := io.ReadAll(metricsResp.Body)
	require.NoError(t, err)

	text := string(body)
	assert.True(t, strings.Contains(text, `bank_sandbox_operator_actions_total{action="RegisterUser",outcome="success"} 1`), text)
	assert.True(t, strings.Contains(text, `handler="/userservice/api/v1/users/signup"`), text)
}

func TestNewSandbox_InstallsMessageErrors(t *testing.T) {
	NewSandbox(logging.Discard(), "0")

	err := huma.NewError(http.StatusNotFound, "Account not found")

	var msgErr *handlers.MessageError
	require.ErrorAs(t, err, &msgErr)
	assert.Equal(t, "Account not found", msgErr.Message)
}

func TestRouter_LeavesHumaErrorConstructorAlone(t *testing.T) {
	sandbox := NewSandbox(logging.Discard(), "0")
	original := huma.NewError
	t.Cleanup(func() { huma.NewError = original })
	huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
		return &huma.ErrorModel{Status: status, Detail: msg}
	}

	sandbox.Rest.Router()

	var model *huma.ErrorModel
	assert.ErrorAs(t, huma.NewError(http.StatusTeapot, "x"), &model)
}
