//go:build unit

package commands_test

import (
	"context"
	"testing"

	"swipemarket/internal/domain/listing"
	"swipemarket/internal/pkg/clock"
	"swipemarket/internal/usecase/commands"
	"swipemarket/tests/common/fakes"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createParams() commands.CreateListingParams {
	return commands.CreateListingParams{
		DiningHall:      "North Commons",
		TimeStart:       11 * 60,
		TimeEnd:         13 * 60,
		TransactionDate: testTxDate,
		PaymentTypes:    []string{"venmo"},
		PriceCents:      cents(900),
	}
}

func TestCreateListing(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an active listing with seller snapshot", func(t *testing.T) {
		uow := fakes.NewUnitOfWork()
		cmd := commands.NewListingCommands(uow, clock.NewMockClock(testNow))
		seller := withStars(verifiedUser("ava"), 4.5, 3)
		uow.PutUser(seller)

		snap, err := cmd.Create(ctx, seller.ID, createParams())
		require.NoError(t, err)

		assert.Equal(t, listing.StatusActive, snap.Status)
		assert.Equal(t, seller.ID, snap.SellerID)
		assert.Equal(t, "ava", snap.SellerName)
		assert.Equal(t, 4.5, snap.SellerRating)

		stored, ok := uow.Listing(snap.ID)
		require.True(t, ok)
		assert.Equal(t, listing.StatusActive, stored.Status)
	})

	t.Run("unknown seller", func(t *testing.T) {
		uow := fakes.NewUnitOfWork()
		cmd := commands.NewListingCommands(uow, clock.NewMockClock(testNow))

		_, err := cmd.Create(ctx, uuid.New(), createParams())
		assert.ErrorIs(t, err, commands.ErrSellerNotFound)
	})

	t.Run("unverified seller", func(t *testing.T) {
		uow := fakes.NewUnitOfWork()
		cmd := commands.NewListingCommands(uow, clock.NewMockClock(testNow))
		seller := verifiedUser("ava")
		seller.IsEmailVerified = false
		uow.PutUser(seller)

		_, err := cmd.Create(ctx, seller.ID, createParams())
		assert.ErrorIs(t, err, commands.ErrEmailNotVerified)
	})

	t.Run("domain validation bubbles up", func(t *testing.T) {
		uow := fakes.NewUnitOfWork()
		cmd := commands.NewListingCommands(uow, clock.NewMockClock(testNow))
		seller := verifiedUser("ava")
		uow.PutUser(seller)

		params := createParams()
		params.PaymentTypes = nil

		_, err := cmd.Create(ctx, seller.ID, params)
		assert.ErrorIs(t, err, listing.ErrNoPaymentTypes)
	})
}

func TestCancelListing(t *testing.T) {
	ctx := context.Background()

	setup := func() (*fakes.UnitOfWork, commands.ListingCommands, uuid.UUID, uuid.UUID) {
		uow := fakes.NewUnitOfWork()
		cmd := commands.NewListingCommands(uow, clock.NewMockClock(testNow))
		seller := verifiedUser("ava")
		lst := activeListing(seller, nil)
		uow.PutUser(seller)
		uow.PutListing(lst)
		return uow, cmd, lst.ID, seller.ID
	}

	t.Run("seller cancels an active listing", func(t *testing.T) {
		uow, cmd, listingID, sellerID := setup()

		require.NoError(t, cmd.Cancel(ctx, listingID, sellerID))

		stored, _ := uow.Listing(listingID)
		assert.Equal(t, listing.StatusCancelled, stored.Status)
	})

	t.Run("only the owner may cancel", func(t *testing.T) {
		uow, cmd, listingID, _ := setup()

		err := cmd.Cancel(ctx, listingID, uuid.New())
		assert.ErrorIs(t, err, commands.ErrNotListingOwner)

		stored, _ := uow.Listing(listingID)
		assert.Equal(t, listing.StatusActive, stored.Status)
	})

	t.Run("claimed listing cannot be cancelled", func(t *testing.T) {
		uow, cmd, listingID, sellerID := setup()

		stored, _ := uow.Listing(listingID)
		stored.Status = listing.StatusClaimed
		uow.PutListing(stored)

		err := cmd.Cancel(ctx, listingID, sellerID)
		assert.ErrorIs(t, err, commands.ErrListingNotActive)
	})

	t.Run("unknown listing", func(t *testing.T) {
		_, cmd, _, sellerID := setup()

		err := cmd.Cancel(ctx, uuid.New(), sellerID)
		assert.ErrorIs(t, err, commands.ErrListingNotFound)
	})
}
