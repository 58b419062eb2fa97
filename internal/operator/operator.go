package operator

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-client/internal/logging"
	"github.com/carson-networks/bank-client/internal/operator/actions"
	"github.com/carson-networks/bank-client/internal/storage"
)

// Observer is told the outcome of every processed action.
type Observer interface {
	ObserveAction(name string, err error, duration time.Duration)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage  *storage.Storage
	queue    chan ActionItem
	logger   *logrus.Logger
	observer Observer
}

func NewOperator(s *storage.Storage, queue chan ActionItem, logger *logrus.Logger, observer Observer) *Operator {
	return &Operator{
		storage:  s,
		queue:    queue,
		logger:   logger,
		observer: observer,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	logData := logging.NewLogData(o.logger)
	logData.AddData("action", item.action.Name())
	start := time.Now()

	err := o.perform(item)

	if o.observer != nil {
		o.observer.ObserveAction(item.action.Name(), err, time.Since(start))
	}
	logData.AddData("durationMs", time.Since(start).Milliseconds())
	if err != nil {
		logData.Log().WithError(err).Info("Operator.Action.Error")
	} else {
		logData.Log().Debug("Operator.Action.Complete")
	}
	item.response <- ActionItemResponse{err: err}
}

func (o *Operator) perform(item ActionItem) error {
	if err := item.ctx.Err(); err != nil {
		return err
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		return err
	}

	if err = item.action.Perform(item.ctx, writer); err != nil {
		_ = writer.Rollback()
		return err
	}

	return writer.Commit()
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
