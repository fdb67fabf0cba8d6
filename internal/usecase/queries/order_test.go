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

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderQueries(t *testing.T) {
	ctx := context.Background()

	uow := fakes.NewUnitOfWork()
	q := queries.NewOrderQueries(uow, uow.ReadStore())

	sellerID := uuid.New()
	buyerID := uuid.New()
	txDate := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	snap := shared.OrderSnapshot{
		ID:              order.DeriveID(sellerID, buyerID, txDate),
		SellerID:        sellerID,
		SellerName:      "ava",
		BuyerID:         buyerID,
		BuyerName:       "ben",
		DiningHall:      "North Commons",
		TransactionDate: txDate,
		PriceCents:      900,
		Status:          order.StatusActive,
		RatingByBuyer:   &order.Rating{Stars: 5, RatedAt: txDate},
		BuyerHasRated:   true,
	}
	uow.PutOrder(snap)

	t.Run("participants see the order", func(t *testing.T) {
		expected := &queries.OrderView{
			ID:              snap.ID,
			SellerID:        sellerID,
			SellerName:      "ava",
			BuyerID:         buyerID,
			BuyerName:       "ben",
			DiningHall:      "North Commons",
			TransactionDate: txDate,
			PriceCents:      900,
			Status:          "active",
			BuyerHasRated:   true,
			RatingByBuyer:   &queries.RatingView{Stars: 5, RatedAt: txDate},
		}

		for _, actor := range []uuid.UUID{sellerID, buyerID} {
			view, err := q.GetByID(ctx, snap.ID, actor)
			require.NoError(t, err)
			if diff := cmp.Diff(expected, view); diff != "" {
				t.Errorf("order view mismatch (-want +got):\n%s", diff)
			}
		}
	})

	t.Run("outsiders are denied", func(t *testing.T) {
		_, err := q.GetByID(ctx, snap.ID, uuid.New())
		assert.ErrorIs(t, err, queries.ErrOrderAccessDenied)
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := q.GetByID(ctx, "missing_order", sellerID)
		assert.ErrorIs(t, err, queries.ErrOrderNotFound)
	})

	t.Run("list by participant", func(t *testing.T) {
		views, err := q.ListByUser(ctx, buyerID)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, snap.ID, views[0].ID)

		views, err = q.ListByUser(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}
