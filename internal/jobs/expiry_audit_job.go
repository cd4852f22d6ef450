package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/spantra1997/SecondServe/internal/core/application/usecases/queries"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/donation"

	"github.com/robfig/cron/v3"
)

// ExpiryAuditJob hourly reports available donations whose expiry date has
// passed. The lifecycle itself never auto-expires a donation; this job gives
// donors and operators visibility into listings going stale.
type ExpiryAuditJob struct {
	handler queries.ListDonationsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewExpiryAuditJob creates a new job for auditing expired listings.
// Uses ListDonationsQueryHandler to read available donations every hour.
func NewExpiryAuditJob(handler queries.ListDonationsQueryHandler, logger *slog.Logger) *ExpiryAuditJob {
	return &ExpiryAuditJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "expiry_audit_job"),
	}
}

// Start begins the expiry audit job to run hourly.
func (j *ExpiryAuditJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewListDonationsQuery(donation.Available, nil)
		if err != nil {
			j.logger.ErrorContext(ctx, "Expiry audit job failed", "error", err)
			return
		}

		available, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Expiry audit job failed", "error", err)
			return
		}

		now := time.Now().UTC()
		expired := 0
		for _, d := range available {
			if d.ExpiryDate.Before(now) {
				expired++
				j.logger.WarnContext(ctx, "Available donation past expiry",
					"donation_id", d.ID.String(),
					"donor_name", d.DonorName,
					"expiry_date", d.ExpiryDate,
				)
			}
		}

		j.logger.InfoContext(ctx, "Expiry audit complete",
			"available", len(available),
			"expired", expired,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Expiry audit job started (running hourly)")
	return nil
}

// Stop stops the expiry audit job.
func (j *ExpiryAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Expiry audit job stopped")
}
