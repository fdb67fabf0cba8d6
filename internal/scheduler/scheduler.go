package scheduler

import (
	"context"
	"log/slog"
	"time"

	"swipemarket/internal/pkg/config"
	"swipemarket/internal/pkg/errs"
	"swipemarket/internal/usecase/jobs"

	"github.com/robfig/cron/v3"
)

var errInvalidSchedule = errs.New("invalid job schedule")

const runTimeout = 5 * time.Minute

// Scheduler drives the daily lifecycle sweep. Listings expire first so a
// listing and the order claimed from it settle in the same run.
type Scheduler struct {
	cron *cron.Cron
	jobs jobs.LifecycleJobs
}

func New(cfg config.JobsConfig, lifecycle jobs.LifecycleJobs) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(),
		jobs: lifecycle,
	}
	if _, err := s.cron.AddFunc(cfg.Schedule, s.runSweep); err != nil {
		return nil, errs.Mark(err, errInvalidSchedule)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("lifecycle scheduler started")
}

// Stop waits for an in-flight sweep to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("lifecycle scheduler stopped")
}

func (s *Scheduler) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	start := time.Now()

	expired, err := s.jobs.ExpireListings(ctx)
	if err != nil {
		slog.Error("listing expiry sweep failed", "error", err.Error())
	}

	result, err := s.jobs.CompleteOrders(ctx)
	if err != nil {
		slog.Error("order completion sweep failed", "error", err.Error())
	}

	slog.Info("lifecycle sweep finished",
		"listings_expired", expired,
		"orders_completed", result.Completed,
		"users_updated", result.UsersUpdated,
		"duration_ms", time.Since(start).Milliseconds())
}
