package components

import (
	"swipemarket/internal/pkg/clock"
	"swipemarket/internal/pkg/config"
	"swipemarket/internal/usecase/commands"
	"swipemarket/internal/usecase/jobs"
	"swipemarket/internal/usecase/queries"
	"swipemarket/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseJobsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOrderCommands,
		commands.NewListingCommands,
		commands.NewNotificationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewListingQueries,
		queries.NewOrderQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseJobsModule = fx.Module("usecase/jobs",
	fx.Provide(
		NewLifecycleJobs,
	),
)

func NewLifecycleJobs(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) jobs.LifecycleJobs {
	return jobs.NewLifecycleJobs(uow, clk, cfg.Jobs)
}
