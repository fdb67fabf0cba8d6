package components

import (
	"swipemarket/internal/infra/readstore"
	"swipemarket/internal/infra/uow"
	"swipemarket/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// UnitOfWork owns all write paths; the readstores below serve the
		// query side against the bare pool.
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewListingReadStore,
			fx.As(new(queries.ListingReadStore)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
	),
)
