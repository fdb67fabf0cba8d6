//go:build unit

package listing_test

import (
	"testing"
	"time"

	"swipemarket/internal/domain/listing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listingArgs struct {
	diningHall      string
	timeStart       int
	timeEnd         int
	transactionDate time.Time
	paymentTypes    []string
	priceCents      *int64
}

func validArgs() listingArgs {
	return listingArgs{
		diningHall:      "North Commons",
		timeStart:       11 * 60,
		timeEnd:         13 * 60,
		transactionDate: time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
		paymentTypes:    []string{"venmo", "cash"},
	}
}

func build(a listingArgs) (*listing.Listing, error) {
	return listing.NewListing(
		uuid.New(), "Ava", a.diningHall, a.timeStart, a.timeEnd,
		a.transactionDate, 4.5, a.paymentTypes, a.priceCents, time.Now(),
	)
}

func TestNewListing(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		l, err := build(validArgs())
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, l.ID())
		assert.Equal(t, listing.StatusActive, l.Status())
		assert.Equal(t, "North Commons", l.DiningHall())
	})

	t.Run("dining hall is trimmed", func(t *testing.T) {
		a := validArgs()
		a.diningHall = "  South Cafe  "

		l, err := build(a)
		require.NoError(t, err)
		assert.Equal(t, "South Cafe", l.DiningHall())
	})

	tests := []struct {
		name   string
		mutate func(*listingArgs)
		errIs  error
	}{
		{
			name:   "empty dining hall",
			mutate: func(a *listingArgs) { a.diningHall = "   " },
			errIs:  listing.ErrEmptyDiningHall,
		},
		{
			name:   "window end before start",
			mutate: func(a *listingArgs) { a.timeStart = 13 * 60; a.timeEnd = 11 * 60 },
			errIs:  listing.ErrInvalidTimeWindow,
		},
		{
			name:   "window end past midnight",
			mutate: func(a *listingArgs) { a.timeEnd = listing.MinutesPerDay + 1 },
			errIs:  listing.ErrInvalidTimeWindow,
		},
		{
			name:   "negative window start",
			mutate: func(a *listingArgs) { a.timeStart = -1 },
			errIs:  listing.ErrInvalidTimeWindow,
		},
		{
			name:   "zero transaction date",
			mutate: func(a *listingArgs) { a.transactionDate = time.Time{} },
			errIs:  listing.ErrZeroTransactionDate,
		},
		{
			name:   "no payment types",
			mutate: func(a *listingArgs) { a.paymentTypes = nil },
			errIs:  listing.ErrNoPaymentTypes,
		},
		{
			name:   "negative price",
			mutate: func(a *listingArgs) { p := int64(-100); a.priceCents = &p },
			errIs:  listing.ErrNegativePrice,
		},
		{
			name:   "zero price is a free listing",
			mutate: func(a *listingArgs) { p := int64(0); a.priceCents = &p },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validArgs()
			tt.mutate(&a)

			_, err := build(a)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestClaimable(t *testing.T) {
	assert.True(t, listing.Claimable(listing.StatusActive))
	assert.False(t, listing.Claimable(listing.StatusClaimed))
	assert.False(t, listing.Claimable(listing.StatusCancelled))
	assert.False(t, listing.Claimable(listing.StatusExpired))
}
