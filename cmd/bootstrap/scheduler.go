package bootstrap

import (
	"context"

	"swipemarket/internal/pkg/config"
	"swipemarket/internal/scheduler"
	"swipemarket/internal/usecase/jobs"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartScheduler),
)

func StartScheduler(lc fx.Lifecycle, cfg config.Config, lifecycle jobs.LifecycleJobs) error {
	s, err := scheduler.New(cfg.Jobs, lifecycle)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
	return nil
}
