//go:build unit

package commands_test

import (
	"time"

	"swipemarket/internal/domain/listing"
	"swipemarket/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	testNow    = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	testTxDate = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
)

func verifiedUser(name string) shared.UserSnapshot {
	return shared.UserSnapshot{
		ID:              uuid.New(),
		Name:            name,
		Email:           name + "@campus.edu",
		IsEmailVerified: true,
	}
}

func withStars(u shared.UserSnapshot, stars float64, completed int64) shared.UserSnapshot {
	u.Stars = &stars
	u.TransactionsCompleted = completed
	return u
}

func activeListing(seller shared.UserSnapshot, priceCents *int64) shared.ListingSnapshot {
	return shared.ListingSnapshot{
		ID:              uuid.New(),
		SellerID:        seller.ID,
		SellerName:      seller.Name,
		DiningHall:      "North Commons",
		TimeStart:       11 * 60,
		TimeEnd:         13 * 60,
		TransactionDate: testTxDate,
		SellerRating:    4.5,
		PaymentTypes:    []string{"venmo"},
		PriceCents:      priceCents,
		Status:          listing.StatusActive,
	}
}

func cents(v int64) *int64 { return &v }
