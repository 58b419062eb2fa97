package views

import (
	"context"
	"errors"

	"github.com/carson-networks/bank-client/internal/form"
	"github.com/carson-networks/bank-client/internal/router"
	"github.com/carson-networks/bank-client/internal/service"
)

const (
	msgSignUpComplete = "Account created successfully! Please sign in."
	msgSignUpFailed   = "Error creating account. Please try again."
)

type signUpClient interface {
	SignUp(ctx context.Context, req service.SignUpRequest) error
}

// SignUp registers a new user.
type SignUp struct {
	FullName    *form.Field[string]
	Email       *form.Field[string]
	PhoneNumber *form.Field[string]
	DateOfBirth *form.Field[string]
	Password    *form.Field[string]
	Address     *form.Field[string]
	Form        *form.Form

	deps  Deps
	users signUpClient
}

func NewSignUp(deps Deps, users signUpClient) *SignUp {
	v := &SignUp{
		FullName: form.NewTextField("fullName", "", form.Trimmed(), form.WithRules(
			form.Required("Full Name Required", "Please enter your full name."),
			form.MinLength(2, "Full Name Too Short", "Full name must be at least 2 characters long after trimming."),
		)),
		Email: emailField(form.Trimmed()),
		PhoneNumber: form.NewTextField("phoneNumber", "", form.Trimmed(), form.WithRules(
			form.Required("Phone Number Required", "Please enter your phone number."),
			form.Matches(phonePattern, "Invalid Phone Number", "Phone number must be between 10 and 15 digits."),
		)),
		DateOfBirth: form.NewTextField("dateOfBirth", "", form.Trimmed()),
		Password:    passwordField("Please enter a password.", form.Trimmed()),
		Address: form.NewTextField("address", "", form.Trimmed(), form.WithRules(
			form.Required("Address Required", "Please enter your address."),
			form.MinLength(5, "Address Too Short", "Address must be at least 5 characters long after trimming."),
		)),
		deps:  deps,
		users: users,
	}
	v.Form = form.New(v.FullName, v.Email, v.PhoneNumber, v.DateOfBirth, v.Password, v.Address)
	return v
}

func (v *SignUp) Init(context.Context) {}

// Submit registers the user and returns to sign-in.
func (v *SignUp) Submit(ctx context.Context) error {
	logData := v.deps.logData(router.PathSignUp)

	err := v.Form.Submit(ctx, func(ctx context.Context) error {
		stopTimer := logData.AddTiming("signUpMs")
		defer stopTimer()
		return v.users.SignUp(ctx, service.SignUpRequest{
			FullName:    v.FullName.Value(),
			Email:       v.Email.Value(),
			PhoneNumber: v.PhoneNumber.Value(),
			DateOfBirth: v.DateOfBirth.Value(),
			Password:    v.Password.Value(),
			Address:     v.Address.Value(),
		})
	})
	if errors.Is(err, form.ErrInvalid) {
		return err
	}
	if err != nil {
		logData.Log().WithError(err).Info("Views.SignUp.Error")
		v.deps.Messenger.Error(failureText(err, msgSignUpFailed))
		return err
	}

	logData.Log().Info("Views.SignUp.Complete")
	v.deps.Messenger.Success(msgSignUpComplete)
	v.Form.Reset()
	return v.deps.Nav.Go(ctx, router.PathSignIn)
}

// ShowSignIn returns to the sign-in page.
func (v *SignUp) ShowSignIn(ctx context.Context) error {
	return v.deps.Nav.Go(ctx, router.PathSignIn)
}
