package jobs

import (
	"context"
	"log/slog"

	"fueldispatch/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// CertificationSweepJob periodically reports vehicles whose DOT certification
// has expired. Runs hourly so dispatchers see grounded vehicles before the
// next planning cycle.
type CertificationSweepJob struct {
	vehicleRepo ports.VehicleRepository
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewCertificationSweepJob creates a new job for the certification sweep.
// Reads expired vehicles directly; the sweep never modifies state.
func NewCertificationSweepJob(vehicleRepo ports.VehicleRepository, logger *slog.Logger) *CertificationSweepJob {
	return &CertificationSweepJob{
		vehicleRepo: vehicleRepo,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "certification_sweep_job"),
	}
}

// Start begins the certification sweep job to run every hour.
func (j *CertificationSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		vehicles, err := j.vehicleRepo.GetAllCertificationExpired(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Certification sweep job failed", "error", err)
			return
		}

		for _, veh := range vehicles {
			j.logger.WarnContext(ctx, "Vehicle certification expired",
				"vehicle_id", veh.ID().String(),
				"name", veh.Name(),
				"license_plate", veh.LicensePlate(),
				"last_inspection", veh.LastInspection(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Certification sweep job started (running every hour)")
	return nil
}

// Stop stops the certification sweep job.
func (j *CertificationSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Certification sweep job stopped")
}
