package views

import (
	"context"
	"errors"
	"net/http"

	"github.com/carson-networks/bank-client/internal/form"
	"github.com/carson-networks/bank-client/internal/httpclient"
	"github.com/carson-networks/bank-client/internal/router"
	"github.com/carson-networks/bank-client/internal/service"
	"github.com/carson-networks/bank-client/internal/session"
)

const msgInvalidCredentials = "Invalid email or password"

var errNoToken = errors.New("views: sign-in response carried no token")

type signInClient interface {
	SignIn(ctx context.Context, email, password string) (*service.SignInResult, error)
}

// SignIn exchanges credentials for a session.
type SignIn struct {
	Email    *form.Field[string]
	Password *form.Field[string]
	Form     *form.Form

	deps  Deps
	users signInClient
}

// NewSignIn creates the sign-in page. Credentials are validated as typed, untrimmed.
func NewSignIn(deps Deps, users signInClient) *SignIn {
	v := &SignIn{
		Email:    emailField(),
		Password: passwordField("Please enter your password."),
		deps:     deps,
		users:    users,
	}
	v.Form = form.New(v.Email, v.Password)
	return v
}

func (v *SignIn) Init(context.Context) {}

// Submit signs in, stores the session and opens the dashboard.
func (v *SignIn) Submit(ctx context.Context) error {
	logData := v.deps.logData(router.PathSignIn)

	err := v.Form.Submit(ctx, func(ctx context.Context) error {
		stopTimer := logData.AddTiming("signInMs")
		result, err := v.users.SignIn(ctx, v.Email.Value(), v.Password.Value())
		stopTimer()
		if err != nil {
			return err
		}
		if result.Token == "" {
			return errNoToken
		}

		if err := v.deps.Session.Save(session.Session{Token: result.Token, UserID: result.UserID.String()}); err != nil {
			return err
		}
		logData.AddData("userID", result.UserID.String())
		return v.deps.Nav.Go(ctx, router.PathDashboard)
	})
	if errors.Is(err, form.ErrInvalid) {
		return err
	}
	if err != nil {
		logData.Log().WithError(err).Info("Views.SignIn.Error")
		v.deps.Messenger.Error(signInFailureText(err))
		return err
	}

	logData.Log().Info("Views.SignIn.Complete")
	return nil
}

// ShowSignUp opens the registration page.
func (v *SignIn) ShowSignUp(ctx context.Context) error {
	return v.deps.Nav.Go(ctx, router.PathSignUp)
}

func signInFailureText(err error) string {
	var apiErr *httpclient.APIError
	if errors.As(err, &apiErr) {
		if apiErr.FromServer {
			return apiErr.Message
		}
		if apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden {
			return msgInvalidCredentials
		}
		return apiErr.Message
	}
	if errors.Is(err, errNoToken) {
		return msgInvalidCredentials
	}
	return failureText(err, msgInvalidCredentials)
}
