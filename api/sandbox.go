package api

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-client/internal/bank"
	"github.com/carson-networks/bank-client/internal/handlers"
	"github.com/carson-networks/bank-client/internal/metrics"
	"github.com/carson-networks/bank-client/internal/operator"
	"github.com/carson-networks/bank-client/internal/storage"
)

const (
	metricsNamespace = "bank_sandbox"
	writeWorkers     = 1
)

// Sandbox is an in-memory banking backend the client can be pointed at.
type Sandbox struct {
	Rest     *Rest
	operator *operator.OperatorDelegator
}

// NewSandbox also makes huma render errors as {"message"} bodies, process-wide.
func NewSandbox(logger *logrus.Logger, port string) *Sandbox {
	handlers.UseMessageErrors()

	store := storage.NewStorage()
	collector := metrics.NewCollector(metricsNamespace)
	delegator := operator.NewOperatorDelegator(store, writeWorkers, logger, collector)

	return &Sandbox{
		Rest: &Rest{
			Logger:   logger,
			Port:     port,
			Storage:  store,
			Bank:     bank.NewBank(store, delegator),
			Metrics:  collector,
			Registry: metrics.NewRegistry(collector),
		},
		operator: delegator,
	}
}

// Start launches the write workers.
func (s *Sandbox) Start() {
	s.operator.Start()
}

// Stop drains the write workers.
func (s *Sandbox) Stop() {
	s.operator.Stop()
}

// Run serves until ctx is cancelled.
func (s *Sandbox) Run(ctx context.Context) error {
	s.Start()
	defer s.Stop()
	return s.Rest.Serve(ctx)
}
