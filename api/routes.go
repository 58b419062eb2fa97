package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humamux"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-client/internal/bank"
	"github.com/carson-networks/bank-client/internal/handlers/v1/account"
	"github.com/carson-networks/bank-client/internal/handlers/v1/status"
	"github.com/carson-networks/bank-client/internal/handlers/v1/transaction"
	"github.com/carson-networks/bank-client/internal/handlers/v1/user"
	"github.com/carson-networks/bank-client/internal/logging"
	"github.com/carson-networks/bank-client/internal/metrics"
	"github.com/carson-networks/bank-client/internal/storage"
)

const shutdownTimeout = 10 * time.Second

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Storage  *storage.Storage
	Bank     *bank.Bank
	Metrics  *metrics.Collector
	Registry *prometheus.Registry
}

// Router builds the sandbox routes: the three banking services under their
// gateway prefixes, plus /status and /metrics.
func (r *Rest) Router() http.Handler {
	router := mux.NewRouter()
	router.Use(r.observe)

	router.Handle("/status", status.NewHandler(r.Storage)).Methods(http.MethodGet)
	router.Handle("/metrics", metrics.Handler(r.Registry)).Methods(http.MethodGet)

	config := huma.DefaultConfig("Bank Sandbox", "1.0.0")
	config.CreateHooks = nil
	humaAPI := humamux.New(router, config)

	users := r.Bank.Users
	user.NewSignInHandler(users).Register(humaAPI)
	user.NewSignUpHandler(users).Register(humaAPI)
	user.NewGetUserHandler(users).Register(humaAPI)
	account.NewCreateAccountHandler(users, r.Bank.Accounts).Register(humaAPI)
	account.NewListAccountsHandler(users, r.Bank.Accounts).Register(humaAPI)
	transaction.NewStatementHandler(users, r.Bank.Transactions).Register(humaAPI)
	transaction.NewTransferHandler(users, r.Bank.Transactions).Register(humaAPI)

	return router
}

// observe logs and counts every matched request under its route template.
func (r *Rest) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		name := routeName(req)
		handler := logging.LoggingWrapper(name, r.Logger, next)
		if r.Metrics != nil {
			r.Metrics.Instrument(name, handler).ServeHTTP(w, req)
			return
		}
		handler(w, req)
	})
}

func routeName(req *http.Request) string {
	route := mux.CurrentRoute(req)
	if route == nil {
		return req.URL.Path
	}
	tpl, err := route.GetPathTemplate()
	if err != nil {
		return req.URL.Path
	}
	return tpl
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
