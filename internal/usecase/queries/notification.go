package queries

import (
	"context"
	"log/slog"

	"swipemarket/internal/infra/db"
	"swipemarket/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationQueries interface {
	// UnreadBadge returns the user's app-icon badge count: active orders
	// with the user's unread flag raised. The badge is decorative, so any
	// failure computing it degrades to zero instead of propagating.
	UnreadBadge(ctx context.Context, userID uuid.UUID) int
}

type notificationQueriesImpl struct {
	uow   shared.UnitOfWork
	store OrderReadStore
}

func NewNotificationQueries(uow shared.UnitOfWork, store OrderReadStore) NotificationQueries {
	return &notificationQueriesImpl{uow: uow, store: store}
}

func (q *notificationQueriesImpl) UnreadBadge(ctx context.Context, userID uuid.UUID) int {
	var count int
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		n, err := q.store.CountUnread(ctx, dbtx, userID)
		if err != nil {
			return err
		}
		count = n
		return nil
	})
	if err != nil {
		slog.Warn("failed to compute unread badge, defaulting to zero",
			"user_id", userID, "error", err.Error())
		return 0
	}
	return count
}
