package app

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/bank-client/api"
	"github.com/carson-networks/bank-client/internal/config"
	"github.com/carson-networks/bank-client/internal/httpclient"
	"github.com/carson-networks/bank-client/internal/logging"
	"github.com/carson-networks/bank-client/internal/router"
	"github.com/carson-networks/bank-client/internal/service"
	"github.com/carson-networks/bank-client/internal/session"
	"github.com/carson-networks/bank-client/internal/views"
)

type recordingMessenger struct {
	successes []string
	errors    []string
}

func (m *recordingMessenger) Success(msg string) { m.successes = append(m.successes, msg) }
func (m *recordingMessenger) Error(msg string)   { m.errors = append(m.errors, msg) }

type fixture struct {
	app      *App
	store    *session.MemoryStore
	messages *recordingMessenger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	sandbox := api.NewSandbox(logging.Discard(), "0")
	sandbox.Start()
	t.Cleanup(sandbox.Stop)
	srv := httptest.NewServer(sandbox.Rest.Router())
	t.Cleanup(srv.Close)

	env := config.DefaultConfig()
	env.UserServiceURL = srv.URL + "/userservice/api/v1"
	env.AccountServiceURL = srv.URL + "/accountservice/api/v1"
	env.TransactionServiceURL = srv.URL + "/transactionservice/api/v1"

	store := session.NewMemoryStore()
	client := httpclient.New(srv.Client(), func() string { return session.Token(store) }, logging.Discard())
	messages := &recordingMessenger{}

	return &fixture{
		app: New(Options{
			Service:    service.NewService(client, env),
			Session:    store,
			Messenger:  messages,
			Downloader: views.DirDownloader{Dir: t.TempDir()},
			Logger:     logging.Discard(),
		}),
		store:    store,
		messages: messages,
	}
}

func (f *fixture) signUpAndSignIn(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, f.app.Navigate(ctx, router.PathSignUp))
	signUp, ok := f.app.Current.Get().(*views.SignUp)
	require.True(t, ok)
	signUp.FullName.Set("Asha Rao")
	signUp.Email.Set("asha@example.com")
	signUp.PhoneNumber.Set("9876543210")
	signUp.Password.Set("secret1")
	signUp.Address.Set("12 MG Road")
	require.NoError(t, signUp.Submit(ctx))

	signIn, ok := f.app.Current.Get().(*views.SignIn)
	require.True(t, ok)
	signIn.Email.Set("asha@example.com")
	signIn.Password.Set("secret1")
	require.NoError(t, signIn.Submit(ctx))
}

func TestApp_UnauthenticatedGoesToSignIn(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.app.Start(context.Background(), router.PathRoot))

	assert.Equal(t, router.PathSignIn, f.app.Router.Current().Path)
	assert.IsType(t, &views.SignIn{}, f.app.Current.Get())
	assert.False(t, f.app.NavbarVisible.Get())
}

func TestApp_SignUpSignInReachesDashboard(t *testing.T) {
	f := newFixture(t)

	f.signUpAndSignIn(t)

	assert.Equal(t, []string{"Account created successfully! Please sign in."}, f.messages.successes)
	assert.Empty(t, f.messages.errors)
	assert.Equal(t, router.PathDashboard, f.app.Router.Current().Path)
	assert.True(t, f.app.NavbarVisible.Get())

	dashboard, ok := f.app.Current.Get().(*views.Dashboard)
	require.True(t, ok)
	assert.Equal(t, views.NoAccountsText, dashboard.EmptyText())
}

func TestApp_SignedInUserSkipsAuthPages(t *testing.T) {
	f := newFixture(t)
	f.signUpAndSignIn(t)

	require.NoError(t, f.app.Navigate(context.Background(), router.PathSignIn))

	assert.Equal(t, router.PathDashboard, f.app.Router.Current().Path)
	assert.IsType(t, &views.Dashboard{}, f.app.Current.Get())
}

func TestApp_StatementsPreselectsAccount(t *testing.T) {
	f := newFixture(t)
	f.signUpAndSignIn(t)
	ctx := context.Background()

	require.NoError(t, f.app.Navigate(ctx, router.PathCreateAccount))
	create, ok := f.app.Current.Get().(*views.CreateAccount)
	require.True(t, ok)
	create.AccountType.Set("SAVINGS")
	create.Branch.Set("Central")
	require.NoError(t, create.InitialDeposit.SetText("2500"))
	require.NoError(t, create.Submit(ctx))
	require.Equal(t, router.PathDashboard, f.app.Router.Current().Path)

	require.NoError(t, f.app.Navigate(ctx, router.PathStatements, router.WithParam(router.ParamAccountNumber, "1000000001")))

	statements, ok := f.app.Current.Get().(*views.Statements)
	require.True(t, ok)
	assert.Equal(t, "1000000001", statements.Selected.Get())
	assert.True(t, statements.Visible.Get())
	require.Len(t, statements.Transactions.Get(), 1)
	assert.Equal(t, "Initial deposit", statements.Transactions.Get()[0].Description)
}

func TestApp_SignOut(t *testing.T) {
	f := newFixture(t)
	f.signUpAndSignIn(t)

	require.NoError(t, f.app.SignOut(context.Background()))

	assert.False(t, session.IsAuthenticated(f.store))
	assert.Equal(t, router.PathSignIn, f.app.Router.Current().Path)
	assert.False(t, f.app.NavbarVisible.Get())
}

func TestApp_StaleTokenClearsSession(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Save(session.Session{Token: "forged", UserID: "42"}))

	require.NoError(t, f.app.Navigate(context.Background(), router.PathProfile))

	assert.False(t, session.IsAuthenticated(f.store))
	assert.Equal(t, router.PathSignIn, f.app.Router.Current().Path)
	assert.IsType(t, &views.SignIn{}, f.app.Current.Get())
}

func TestApp_UnknownPath(t *testing.T) {
	f := newFixture(t)

	err := f.app.Navigate(context.Background(), "nowhere")

	assert.ErrorIs(t, err, router.ErrUnknownRoute)
}
