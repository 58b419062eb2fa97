package views

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/bank-client/internal/logging"
	"github.com/carson-networks/bank-client/internal/router"
	"github.com/carson-networks/bank-client/internal/service"
	"github.com/carson-networks/bank-client/internal/session"
)

type recordingMessenger struct {
	successes []string
	errors    []string
}

func (m *recordingMessenger) Success(msg string) { m.successes = append(m.successes, msg) }
func (m *recordingMessenger) Error(msg string)   { m.errors = append(m.errors, msg) }

type recordingNavigator struct {
	paths  []string
	params [][]router.Param
}

func (n *recordingNavigator) Go(_ context.Context, path string, params ...router.Param) error {
	n.paths = append(n.paths, path)
	n.params = append(n.params, params)
	return nil
}

type memoryDownloader struct {
	name string
	data bytes.Buffer
	err  error
}

func (d *memoryDownloader) Download(name string, write func(w io.Writer) error) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	d.name = name
	if err := write(&d.data); err != nil {
		return "", err
	}
	return "/downloads/" + name, nil
}

type fixture struct {
	deps       Deps
	store      *session.MemoryStore
	nav        *recordingNavigator
	messages   *recordingMessenger
	downloader *memoryDownloader
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:      session.NewMemoryStore(),
		nav:        &recordingNavigator{},
		messages:   &recordingMessenger{},
		downloader: &memoryDownloader{},
	}
	f.deps = Deps{
		Nav:        f.nav,
		Session:    f.store,
		Messenger:  f.messages,
		Downloader: f.downloader,
		Logger:     logging.Discard(),
		Now:        func() time.Time { return time.Date(2025, 9, 15, 9, 0, 0, 0, time.UTC) },
	}
	return f
}

func (f *fixture) signedIn() *fixture {
	_ = f.store.Save(session.Session{Token: "tok", UserID: "42"})
	return f
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) SignIn(ctx context.Context, email, password string) (*service.SignInResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SignInResult), args.Error(1)
}

func (m *mockUserService) SignUp(ctx context.Context, req service.SignUpRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *mockUserService) GetUser(ctx context.Context, userID string) (*service.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Profile), args.Error(1)
}

type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) ListAccounts(ctx context.Context) ([]service.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Account), args.Error(1)
}

func (m *mockAccountService) CreateAccount(ctx context.Context, req service.CreateAccountRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) Statement(ctx context.Context, accountNumber string) ([]service.Transaction, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Transaction), args.Error(1)
}

func (m *mockTransactionService) Transfer(ctx context.Context, req service.TransferRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

var sampleAccounts = []service.Account{
	{AccountNumber: "1000000001", AccountType: service.AccountTypeSavings, Currency: service.CurrencyINR, Branch: "MG Road", IsActive: true},
	{AccountNumber: "1000000002", AccountType: service.AccountTypeFD, Currency: service.CurrencyUSD, Branch: "Fort", IsActive: true},
}
