package jobs

import (
	"context"
	"log/slog"
	"time"

	"aboshop/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DraftExpiryJob sweeps the draft registry once a minute and removes
// checkouts whose session went idle past the configured TTL. Completed
// and abandoned purchases age out the same way.
type DraftExpiryJob struct {
	drafts ports.DraftRegistry
	ttl    time.Duration
	cron   *cron.Cron
	logger *slog.Logger
}

// NewDraftExpiryJob creates a new job pruning drafts idle longer than ttl.
func NewDraftExpiryJob(drafts ports.DraftRegistry, ttl time.Duration, logger *slog.Logger) *DraftExpiryJob {
	return &DraftExpiryJob{
		drafts: drafts,
		ttl:    ttl,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "draft_expiry_job"),
	}
}

// Start begins the draft expiry job to run at the top of every minute.
func (j *DraftExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		deadline := time.Now().Add(-j.ttl)
		pruned := j.drafts.PruneIdle(deadline)
		if pruned > 0 {
			j.logger.InfoContext(context.Background(), "Pruned idle checkout drafts",
				"count", pruned, "ttl", j.ttl.String())
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Draft expiry job started (running every minute)")
	return nil
}

// Stop stops the draft expiry job.
func (j *DraftExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Draft expiry job stopped")
}
