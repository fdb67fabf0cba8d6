package jobs

import (
	"context"
	"log/slog"

	"swipemarket/internal/domain/user"
	"swipemarket/internal/pkg/clock"
	"swipemarket/internal/pkg/config"
	"swipemarket/internal/usecase/shared"

	"github.com/google/uuid"
)

type CompleteOrdersResult struct {
	Completed    int
	UsersUpdated int
}

type LifecycleJobs interface {
	// ExpireListings flips every active listing whose transaction date has
	// passed to expired. Returns the number of listings expired.
	ExpireListings(ctx context.Context) (int64, error)
	// CompleteOrders settles every active order whose transaction date has
	// passed: the order is marked completed and both participants receive
	// their transaction and money counters, all in one transaction. A second
	// run over the same data is a no-op.
	CompleteOrders(ctx context.Context) (CompleteOrdersResult, error)
}

type lifecycleJobsImpl struct {
	uow              shared.UnitOfWork
	clock            clock.Clock
	walkInPriceCents int64
}

func NewLifecycleJobs(uow shared.UnitOfWork, clk clock.Clock, cfg config.JobsConfig) LifecycleJobs {
	return &lifecycleJobsImpl{uow: uow, clock: clk, walkInPriceCents: cfg.WalkInPriceCents}
}

func (j *lifecycleJobsImpl) ExpireListings(ctx context.Context) (int64, error) {
	var expired int64
	err := j.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Listings().ExpireBefore(ctx, tx.DB(), j.clock.Now())
		if err != nil {
			return err
		}
		expired = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("expired stale listings", "count", expired)
	return expired, nil
}

func (j *lifecycleJobsImpl) CompleteOrders(ctx context.Context) (CompleteOrdersResult, error) {
	var result CompleteOrdersResult

	err := j.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = CompleteOrdersResult{}

		due, err := tx.Reads().ActiveOrdersBefore(ctx, j.clock.Now())
		if err != nil {
			return err
		}
		if len(due) == 0 {
			return nil
		}

		// Fold per-user deltas first so each user row is written once no
		// matter how many of their orders settle in this run.
		ids := make([]string, 0, len(due))
		deltas := make(map[uuid.UUID]user.StatsDelta, len(due)*2)
		for _, o := range due {
			ids = append(ids, o.ID)
			deltas[o.BuyerID] = deltas[o.BuyerID].Add(user.StatsDelta{
				Transactions:    1,
				MoneySavedCents: j.walkInPriceCents - o.PriceCents,
			})
			deltas[o.SellerID] = deltas[o.SellerID].Add(user.StatsDelta{
				Transactions:     1,
				MoneyEarnedCents: o.PriceCents,
			})
		}

		if err := tx.Orders().MarkCompleted(ctx, tx.DB(), ids); err != nil {
			return err
		}
		for userID, delta := range deltas {
			if err := tx.Users().ApplyStatsDelta(ctx, tx.DB(), userID, delta); err != nil {
				return err
			}
		}

		result = CompleteOrdersResult{Completed: len(ids), UsersUpdated: len(deltas)}
		return nil
	})
	if err != nil {
		return CompleteOrdersResult{}, err
	}

	slog.Info("completed due orders",
		"orders", result.Completed, "users_updated", result.UsersUpdated)
	return result, nil
}
