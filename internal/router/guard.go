package router

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-client/internal/service"
	"github.com/carson-networks/bank-client/internal/session"
)

// UserLookup resolves a user id with the session's bearer token.
type UserLookup interface {
	GetUser(ctx context.Context, userID string) (*service.Profile, error)
}

// Decision is the guard's verdict for one navigation.
type Decision struct {
	Admit      bool
	RedirectTo string
}

func Admit() Decision {
	return Decision{Admit: true}
}

func RedirectTo(path string) Decision {
	return Decision{RedirectTo: path}
}

// Guard decides, per navigation, whether the current session may see a path.
type Guard struct {
	store  session.Store
	users  UserLookup
	logger *logrus.Logger
}

func NewGuard(store session.Store, users UserLookup, logger *logrus.Logger) *Guard {
	return &Guard{store: store, users: users, logger: logger}
}

// IsAuthenticated reports whether a token is present.
func (g *Guard) IsAuthenticated() bool {
	return session.IsAuthenticated(g.store)
}

// CheckAccess sends signed-in users away from the sign-in and sign-up pages and
// everyone else to sign-in unless the stored token still resolves to a user.
// A failed or errored verification clears the session.
func (g *Guard) CheckAccess(ctx context.Context, path string) Decision {
	authenticated := g.IsAuthenticated()

	if IsAuthPage(path) {
		if authenticated {
			return RedirectTo(PathDashboard)
		}
		return Admit()
	}

	if !authenticated {
		return RedirectTo(PathSignIn)
	}

	if !g.verify(ctx) {
		if err := g.store.Clear(); err != nil {
			g.logger.WithError(err).Warn("Guard.CheckAccess.ClearSession")
		}
		return RedirectTo(PathSignIn)
	}

	return Admit()
}

func (g *Guard) verify(ctx context.Context) bool {
	s, err := g.store.Load()
	if err != nil || s.Token == "" || s.UserID == "" {
		return false
	}

	if _, err := g.users.GetUser(ctx, s.UserID); err != nil {
		g.logger.WithError(err).Info("Guard.Verify.Failed")
		return false
	}
	return true
}
