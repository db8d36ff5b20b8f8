package jobs

import (
	"context"
	"log/slog"

	"fueldispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryDispatchJob manages the scheduled dispatch of planned deliveries.
// Runs every minute to send out deliveries whose departure time has arrived.
type DeliveryDispatchJob struct {
	handler commands.DispatchDueDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryDispatchJob creates a new job for dispatching due deliveries.
// Uses DispatchDueDeliveriesCommandHandler to process the dispatch sweep every minute.
func NewDeliveryDispatchJob(handler commands.DispatchDueDeliveriesCommandHandler, logger *slog.Logger) *DeliveryDispatchJob {
	return &DeliveryDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_dispatch_job"),
	}
}

// Start begins the delivery dispatch job to run every minute.
func (j *DeliveryDispatchJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchDueDeliveriesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Failed candidates stay planned and are retried on the next sweep.
			j.logger.ErrorContext(ctx, "Delivery dispatch job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery dispatch job started (running every minute)")
	return nil
}

// Stop stops the delivery dispatch job.
func (j *DeliveryDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery dispatch job stopped")
}
