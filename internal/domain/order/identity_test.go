//go:build unit

package order_test

import (
	"fmt"
	"testing"
	"time"

	"swipemarket/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDeriveID(t *testing.T) {
	sellerID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	buyerID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	txDate := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("format is seller_buyer_millis", func(t *testing.T) {
		got := order.DeriveID(sellerID, buyerID, txDate)
		want := fmt.Sprintf("%s_%s_%d", sellerID, buyerID, txDate.UnixMilli())
		assert.Equal(t, want, got)
	})

	t.Run("same inputs always derive the same id", func(t *testing.T) {
		first := order.DeriveID(sellerID, buyerID, txDate)
		second := order.DeriveID(sellerID, buyerID, txDate)
		assert.Equal(t, first, second)
	})

	t.Run("sub-millisecond precision does not leak into the id", func(t *testing.T) {
		withNanos := txDate.Add(500 * time.Microsecond)
		assert.Equal(t,
			order.DeriveID(sellerID, buyerID, txDate),
			order.DeriveID(sellerID, buyerID, withNanos),
		)
	})

	t.Run("any changed component derives a different id", func(t *testing.T) {
		base := order.DeriveID(sellerID, buyerID, txDate)

		assert.NotEqual(t, base, order.DeriveID(uuid.New(), buyerID, txDate))
		assert.NotEqual(t, base, order.DeriveID(sellerID, uuid.New(), txDate))
		assert.NotEqual(t, base, order.DeriveID(sellerID, buyerID, txDate.Add(time.Millisecond)))
	})

	t.Run("swapping seller and buyer derives a different id", func(t *testing.T) {
		assert.NotEqual(t,
			order.DeriveID(sellerID, buyerID, txDate),
			order.DeriveID(buyerID, sellerID, txDate),
		)
	})
}
