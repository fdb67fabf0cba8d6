//go:build unit

package order_test

import (
	"testing"
	"time"

	"swipemarket/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func claimInput() order.ClaimInput {
	return order.ClaimInput{
		SellerID:        uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		SellerName:      "Ava",
		SellerStars:     4.5,
		BuyerID:         uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		BuyerName:       "Ben",
		BuyerStars:      5.0,
		DiningHall:      "North Commons",
		TransactionDate: time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
		PriceCents:      900,
	}
}

func TestNewFromClaim(t *testing.T) {
	in := claimInput()
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	o := order.NewFromClaim(in, now)

	assert.Equal(t, order.DeriveID(in.SellerID, in.BuyerID, in.TransactionDate), o.ID())
	assert.Equal(t, order.StatusActive, o.Status())
	assert.Equal(t, in.SellerName, o.SellerName())
	assert.Equal(t, in.BuyerName, o.BuyerName())
	assert.Equal(t, in.PriceCents, o.PriceCents())
	assert.Equal(t, now, o.CreatedAt())

	// A fresh order is unread on both sides.
	assert.True(t, o.SellerHasNotifs())
	assert.True(t, o.BuyerHasNotifs())
}

func TestNewRating(t *testing.T) {
	now := time.Now()
	note := "great swipe"

	tests := []struct {
		name  string
		stars int
		errIs error
	}{
		{name: "minimum valid stars", stars: 1},
		{name: "maximum valid stars", stars: 5},
		{name: "zero stars", stars: 0, errIs: order.ErrInvalidStars},
		{name: "above maximum", stars: 6, errIs: order.ErrInvalidStars},
		{name: "negative stars", stars: -1, errIs: order.ErrInvalidStars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := order.NewRating(tt.stars, &note, now)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.stars, r.Stars)
			assert.Equal(t, &note, r.Note)
			assert.Equal(t, now, r.RatedAt)
		})
	}
}

func TestSideOf(t *testing.T) {
	in := claimInput()

	side, ok := order.SideOf(in.SellerID, in.BuyerID, in.SellerID)
	require.True(t, ok)
	assert.Equal(t, order.SideSeller, side)

	side, ok = order.SideOf(in.SellerID, in.BuyerID, in.BuyerID)
	require.True(t, ok)
	assert.Equal(t, order.SideBuyer, side)

	_, ok = order.SideOf(in.SellerID, in.BuyerID, uuid.New())
	assert.False(t, ok)
}

func TestRatedParty(t *testing.T) {
	in := claimInput()

	t.Run("buyer rates the seller", func(t *testing.T) {
		ratedID, side, err := order.RatedParty(in.SellerID, in.BuyerID, in.BuyerID)
		require.NoError(t, err)
		assert.Equal(t, in.SellerID, ratedID)
		assert.Equal(t, order.SideBuyer, side)
	})

	t.Run("seller rates the buyer", func(t *testing.T) {
		ratedID, side, err := order.RatedParty(in.SellerID, in.BuyerID, in.SellerID)
		require.NoError(t, err)
		assert.Equal(t, in.BuyerID, ratedID)
		assert.Equal(t, order.SideSeller, side)
	})

	t.Run("outsiders cannot rate", func(t *testing.T) {
		_, _, err := order.RatedParty(in.SellerID, in.BuyerID, uuid.New())
		assert.ErrorIs(t, err, order.ErrNotParticipant)
	})
}
