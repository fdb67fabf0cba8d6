package queries

import (
	"context"

	"swipemarket/internal/domain/order"
	"swipemarket/internal/infra"
	"swipemarket/internal/infra/db"
	"swipemarket/internal/pkg/errs"
	"swipemarket/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound     = errs.New("order not found")
	ErrOrderAccessDenied = errs.New("order is visible to its participants only")
)

type OrderQueries interface {
	// GetByID returns a single order; participants only.
	GetByID(ctx context.Context, orderID string, actorID uuid.UUID) (*OrderView, error)
	// ListByUser returns every order the user takes part in, newest
	// transaction date first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	uow   shared.UnitOfWork
	store OrderReadStore
}

func NewOrderQueries(uow shared.UnitOfWork, store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{uow: uow, store: store}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, orderID string, actorID uuid.UUID) (*OrderView, error) {
	var view *OrderView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		snap, err := q.store.FindByID(ctx, dbtx, orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if _, ok := order.SideOf(snap.SellerID, snap.BuyerID, actorID); !ok {
			return ErrOrderAccessDenied
		}
		view = toOrderView(*snap)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *orderQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderView, error) {
	var views []*OrderView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		snaps, err := q.store.FindByParticipant(ctx, dbtx, userID)
		if err != nil {
			return err
		}
		views = make([]*OrderView, 0, len(snaps))
		for _, s := range snaps {
			views = append(views, toOrderView(s))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
