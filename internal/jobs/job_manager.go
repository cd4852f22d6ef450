package jobs

import (
	"fmt"
	"log/slog"

	"github.com/spantra1997/SecondServe/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	impactSnapshotJob *ImpactSnapshotJob
	expiryAuditJob    *ExpiryAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	impactStatsHandler queries.ImpactStatsQueryHandler,
	listDonationsHandler queries.ListDonationsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		impactSnapshotJob: NewImpactSnapshotJob(impactStatsHandler, logger),
		expiryAuditJob:    NewExpiryAuditJob(listDonationsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.impactSnapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start impact snapshot job: %w", err)
	}

	if err := jm.expiryAuditJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.impactSnapshotJob.Stop()
		return fmt.Errorf("failed to start expiry audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.impactSnapshotJob.Stop()
	jm.expiryAuditJob.Stop()
}
