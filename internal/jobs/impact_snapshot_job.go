package jobs

import (
	"context"
	"log/slog"

	"github.com/spantra1997/SecondServe/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ImpactSnapshotJob periodically logs the public impact counters.
// Runs every minute so operators can watch delivery throughput over time.
type ImpactSnapshotJob struct {
	handler queries.ImpactStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewImpactSnapshotJob creates a new job for snapshotting impact statistics.
// Uses ImpactStatsQueryHandler to read the counters every minute.
func NewImpactSnapshotJob(handler queries.ImpactStatsQueryHandler, logger *slog.Logger) *ImpactSnapshotJob {
	return &ImpactSnapshotJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "impact_snapshot_job"),
	}
}

// Start begins the impact snapshot job to run every minute.
func (j *ImpactSnapshotJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		stats, err := j.handler.Handle(ctx, queries.NewImpactStatsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Impact snapshot job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Impact snapshot",
			"meals_rescued", stats.MealsRescued,
			"active_donors", stats.ActiveDonors,
			"co2_saved_kg", stats.CO2SavedKg,
			"cities_served", stats.Cities,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Impact snapshot job started (running every minute)")
	return nil
}

// Stop stops the impact snapshot job.
func (j *ImpactSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Impact snapshot job stopped")
}
