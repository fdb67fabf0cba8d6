package queries

import (
	"context"

	"swipemarket/internal/infra/db"
	"swipemarket/internal/usecase/shared"
)

type ListingQueries interface {
	// ListActive returns the open feed of claimable listings, soonest first.
	ListActive(ctx context.Context) ([]*ListingView, error)
}

type listingQueriesImpl struct {
	uow   shared.UnitOfWork
	store ListingReadStore
}

func NewListingQueries(uow shared.UnitOfWork, store ListingReadStore) ListingQueries {
	return &listingQueriesImpl{uow: uow, store: store}
}

func (q *listingQueriesImpl) ListActive(ctx context.Context) ([]*ListingView, error) {
	var views []*ListingView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		snaps, err := q.store.FindActive(ctx, dbtx)
		if err != nil {
			return err
		}
		views = make([]*ListingView, 0, len(snaps))
		for _, s := range snaps {
			views = append(views, toListingView(s))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
