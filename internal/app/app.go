// Package app binds the router, the auth guard and the page views into one client.
package app

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-client/internal/observable"
	"github.com/carson-networks/bank-client/internal/router"
	"github.com/carson-networks/bank-client/internal/service"
	"github.com/carson-networks/bank-client/internal/session"
	"github.com/carson-networks/bank-client/internal/views"
)

type viewFactory func(nav router.Navigation) views.View

// App owns navigation. Every navigation updates navbar visibility, asks the guard,
// and either redirects or builds and initialises the page's view.
type App struct {
	Router        *router.Router
	Guard         *router.Guard
	NavbarVisible *observable.Observable[bool]
	Current       *observable.Observable[views.View]

	deps      views.Deps
	factories map[string]viewFactory

	// Navigations that arrive while one is being handled are queued.
	mu      sync.Mutex
	pending []router.Navigation
	running bool
}

// Options are the collaborators an App is built from.
type Options struct {
	Service    *service.Service
	Session    session.Store
	Messenger  views.Messenger
	Downloader views.Downloader
	Logger     *logrus.Logger
}

func New(opts Options) *App {
	r := router.New(opts.Logger)
	a := &App{
		Router:        r,
		Guard:         router.NewGuard(opts.Session, opts.Service.User, opts.Logger),
		NavbarVisible: observable.New(false),
		Current:       observable.New[views.View](nil),
		deps: views.Deps{
			Nav:        r,
			Session:    opts.Session,
			Messenger:  opts.Messenger,
			Downloader: opts.Downloader,
			Logger:     opts.Logger,
		},
	}
	a.factories = newFactories(a.deps, opts.Service)
	r.Subscribe(a.onNavigate)
	return a
}

func newFactories(deps views.Deps, svc *service.Service) map[string]viewFactory {
	return map[string]viewFactory{
		router.PathDashboard: func(router.Navigation) views.View {
			return views.NewDashboard(deps, svc.Account)
		},
		router.PathSignIn: func(router.Navigation) views.View {
			return views.NewSignIn(deps, svc.User)
		},
		router.PathSignUp: func(router.Navigation) views.View {
			return views.NewSignUp(deps, svc.User)
		},
		router.PathMyAccounts: func(router.Navigation) views.View {
			return views.NewMyAccounts(deps, svc.Account, svc.Transaction)
		},
		router.PathStatements: func(nav router.Navigation) views.View {
			return views.NewStatements(deps, svc.Account, svc.Transaction).
				Preselect(nav.Param(router.ParamAccountNumber))
		},
		router.PathCreateAccount: func(router.Navigation) views.View {
			return views.NewCreateAccount(deps, svc.Account)
		},
		router.PathTransfer: func(router.Navigation) views.View {
			return views.NewTransfer(deps, svc.Account, svc.Transaction)
		},
		router.PathProfile: func(router.Navigation) views.View {
			return views.NewProfile(deps, svc.User)
		},
	}
}

// Start navigates to path, or to the root route when path is empty.
func (a *App) Start(ctx context.Context, path string, params ...router.Param) error {
	return a.Router.Go(ctx, path, params...)
}

// Navigate is Router.Go.
func (a *App) Navigate(ctx context.Context, path string, params ...router.Param) error {
	return a.Router.Go(ctx, path, params...)
}

// SignOut clears the session and returns to sign-in.
func (a *App) SignOut(ctx context.Context) error {
	return views.SignOut(ctx, a.deps.Session, a.Router, a.deps.Logger)
}

// onNavigate serialises navigations: one raised while a view initialises runs
// after the current one finishes, so the last navigation always wins.
func (a *App) onNavigate(ctx context.Context, nav router.Navigation) {
	a.mu.Lock()
	a.pending = append(a.pending, nav)
	if a.running {
		a.mu.Unlock()
		return
	}
	a.running = true
	a.mu.Unlock()

	for {
		a.mu.Lock()
		if len(a.pending) == 0 {
			a.running = false
			a.mu.Unlock()
			return
		}
		next := a.pending[0]
		a.pending = a.pending[1:]
		a.mu.Unlock()

		a.show(ctx, next)
	}
}

func (a *App) show(ctx context.Context, nav router.Navigation) {
	a.NavbarVisible.Set(!router.IsAuthPage(nav.Path))

	decision := a.Guard.CheckAccess(ctx, nav.Path)
	if !decision.Admit {
		a.deps.Logger.WithField("from", nav.Path).WithField("to", decision.RedirectTo).Debug("App.Navigate.Redirect")
		if err := a.Router.Go(ctx, decision.RedirectTo); err != nil {
			a.deps.Logger.WithError(err).Error("App.Navigate.RedirectError")
		}
		return
	}

	factory, ok := a.factories[nav.Path]
	if !ok {
		a.deps.Logger.WithField("path", nav.Path).Error("App.Navigate.NoView")
		return
	}

	view := factory(nav)
	a.Current.Set(view)
	view.Init(ctx)
}
