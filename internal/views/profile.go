package views

import (
	"context"

	"github.com/carson-networks/bank-client/internal/observable"
	"github.com/carson-networks/bank-client/internal/router"
	"github.com/carson-networks/bank-client/internal/service"
)

const msgLoadProfileFailed = "Error loading profile. Please try again."

type profileClient interface {
	GetUser(ctx context.Context, userID string) (*service.Profile, error)
}

// Profile shows the signed-in user's details.
type Profile struct {
	Profile *observable.Observable[service.Profile]
	Loading *observable.Observable[bool]

	deps  Deps
	users profileClient
}

func NewProfile(deps Deps, users profileClient) *Profile {
	return &Profile{
		Profile: observable.New(service.Profile{}),
		Loading: observable.New(false),
		deps:    deps,
		users:   users,
	}
}

func (v *Profile) Init(ctx context.Context) {
	_ = v.Load(ctx)
}

// Load fetches the profile of the stored user id.
func (v *Profile) Load(ctx context.Context) error {
	s, err := v.deps.Session.Load()
	if err != nil || s.UserID == "" {
		if err := v.deps.Nav.Go(ctx, router.PathSignIn); err != nil {
			return err
		}
		return ErrNotSignedIn
	}

	logData := v.deps.logData(router.PathProfile)
	v.Loading.Set(true)
	defer v.Loading.Set(false)

	stopTimer := logData.AddTiming("getUserMs")
	profile, err := v.users.GetUser(ctx, s.UserID)
	stopTimer()
	if err != nil {
		logData.Log().WithError(err).Info("Views.Profile.Error")
		v.deps.Messenger.Error(failureText(err, msgLoadProfileFailed))
		return err
	}

	v.Profile.Set(*profile)
	return nil
}

// GoToSignIn opens the sign-in page.
func (v *Profile) GoToSignIn(ctx context.Context) error {
	return v.deps.Nav.Go(ctx, router.PathSignIn)
}

// SignOut ends the session.
func (v *Profile) SignOut(ctx context.Context) error {
	return SignOut(ctx, v.deps.Session, v.deps.Nav, v.deps.Logger)
}
