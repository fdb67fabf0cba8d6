//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"swipemarket/internal/domain/order"
	"swipemarket/internal/usecase/queries"
	"swipemarket/internal/usecase/shared"
	"swipemarket/tests/common/fakes"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func badgeOrder(userID uuid.UUID, asBuyer bool, status order.Status, notified bool) shared.OrderSnapshot {
	seller := uuid.New()
	buyer := uuid.New()
	if asBuyer {
		buyer = userID
	} else {
		seller = userID
	}
	txDate := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	s := shared.OrderSnapshot{
		ID:              order.DeriveID(seller, buyer, txDate),
		SellerID:        seller,
		BuyerID:         buyer,
		TransactionDate: txDate,
		Status:          status,
	}
	if asBuyer {
		s.BuyerHasNotifs = notified
	} else {
		s.SellerHasNotifs = notified
	}
	return s
}

func TestUnreadBadge(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	uow := fakes.NewUnitOfWork()
	q := queries.NewNotificationQueries(uow, uow.ReadStore())

	// Two unread active orders, one on each side.
	uow.PutOrder(badgeOrder(userID, true, order.StatusActive, true))
	uow.PutOrder(badgeOrder(userID, false, order.StatusActive, true))
	// Read active order.
	uow.PutOrder(badgeOrder(userID, true, order.StatusActive, false))
	// Unread but completed; settled orders never badge.
	uow.PutOrder(badgeOrder(userID, false, order.StatusCompleted, true))
	// Someone else's unread order.
	uow.PutOrder(badgeOrder(uuid.New(), true, order.StatusActive, true))

	assert.Equal(t, 2, q.UnreadBadge(ctx, userID))

	t.Run("user with no orders has a zero badge", func(t *testing.T) {
		assert.Zero(t, q.UnreadBadge(ctx, uuid.New()))
	})
}
