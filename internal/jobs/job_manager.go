package jobs

import (
	"fmt"
	"log/slog"

	"fueldispatch/internal/core/application/usecases/commands"
	"fueldispatch/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	deliveryDispatchJob *DeliveryDispatchJob
	certificationSweep  *CertificationSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the dispatch handler and vehicle repository as dependencies to wire
// up job execution.
func NewJobManager(
	dispatchHandler commands.DispatchDueDeliveriesCommandHandler,
	vehicleRepo ports.VehicleRepository,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deliveryDispatchJob: NewDeliveryDispatchJob(dispatchHandler, logger),
		certificationSweep:  NewCertificationSweepJob(vehicleRepo, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery dispatch job: %w", err)
	}

	if err := jm.certificationSweep.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.deliveryDispatchJob.Stop()
		return fmt.Errorf("failed to start certification sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.certificationSweep.Stop()
	jm.deliveryDispatchJob.Stop()
}
