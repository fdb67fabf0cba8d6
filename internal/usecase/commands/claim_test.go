//go:build unit

package commands_test

import (
	"context"
	"testing"

	"swipemarket/internal/domain/listing"
	"swipemarket/internal/domain/order"
	"swipemarket/internal/pkg/clock"
	"swipemarket/internal/usecase/commands"
	"swipemarket/tests/common/fakes"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClaimFixture() (*fakes.UnitOfWork, *fakes.RecordingNotifier, commands.OrderCommands) {
	uow := fakes.NewUnitOfWork()
	notifier := &fakes.RecordingNotifier{}
	cmd := commands.NewOrderCommands(uow, clock.NewMockClock(testNow), notifier)
	return uow, notifier, cmd
}

func TestClaim(t *testing.T) {
	ctx := context.Background()

	t.Run("claim converts the listing into an order", func(t *testing.T) {
		uow, notifier, cmd := newClaimFixture()
		seller := withStars(verifiedUser("ava"), 4.5, 3)
		buyer := verifiedUser("ben")
		lst := activeListing(seller, cents(900))
		uow.PutUser(seller)
		uow.PutUser(buyer)
		uow.PutListing(lst)

		snap, err := cmd.Claim(ctx, lst.ID, buyer.ID)
		require.NoError(t, err)

		wantID := order.DeriveID(seller.ID, buyer.ID, testTxDate)
		assert.Equal(t, wantID, snap.ID)
		assert.Equal(t, order.StatusActive, snap.Status)
		assert.Equal(t, int64(900), snap.PriceCents)
		assert.Equal(t, 4.5, snap.SellerStars)
		assert.True(t, snap.SellerHasNotifs)
		assert.True(t, snap.BuyerHasNotifs)
		assert.Equal(t, testNow, snap.CreatedAt)

		stored, ok := uow.Order(wantID)
		require.True(t, ok)
		assert.Equal(t, order.StatusActive, stored.Status)

		claimed, ok := uow.Listing(lst.ID)
		require.True(t, ok)
		assert.Equal(t, listing.StatusClaimed, claimed.Status)

		assert.Equal(t, []string{wantID}, notifier.Orders)
	})

	t.Run("never-rated participants snapshot the default stars", func(t *testing.T) {
		uow, _, cmd := newClaimFixture()
		seller := verifiedUser("ava")
		buyer := verifiedUser("ben")
		lst := activeListing(seller, nil)
		uow.PutUser(seller)
		uow.PutUser(buyer)
		uow.PutListing(lst)

		snap, err := cmd.Claim(ctx, lst.ID, buyer.ID)
		require.NoError(t, err)

		assert.Equal(t, 5.0, snap.SellerStars)
		assert.Equal(t, 5.0, snap.BuyerStars)
		// Free listing claims at price zero.
		assert.Equal(t, int64(0), snap.PriceCents)
	})

	t.Run("precondition failures", func(t *testing.T) {
		uow, notifier, cmd := newClaimFixture()
		seller := verifiedUser("ava")
		buyer := verifiedUser("ben")
		unverified := verifiedUser("cal")
		unverified.IsEmailVerified = false

		lst := activeListing(seller, cents(900))
		claimedLst := activeListing(seller, nil)
		claimedLst.Status = listing.StatusClaimed
		orphanLst := activeListing(verifiedUser("ghost"), nil)

		uow.PutUser(seller)
		uow.PutUser(buyer)
		uow.PutUser(unverified)
		uow.PutListing(lst)
		uow.PutListing(claimedLst)
		uow.PutListing(orphanLst)

		_, err := cmd.Claim(ctx, lst.ID, uuid.New())
		assert.ErrorIs(t, err, commands.ErrBuyerNotFound)

		_, err = cmd.Claim(ctx, lst.ID, unverified.ID)
		assert.ErrorIs(t, err, commands.ErrEmailNotVerified)

		_, err = cmd.Claim(ctx, uuid.New(), buyer.ID)
		assert.ErrorIs(t, err, commands.ErrListingNotFound)

		_, err = cmd.Claim(ctx, claimedLst.ID, buyer.ID)
		assert.ErrorIs(t, err, commands.ErrListingNotActive)

		_, err = cmd.Claim(ctx, orphanLst.ID, buyer.ID)
		assert.ErrorIs(t, err, commands.ErrSellerNotFound)

		// No side effects escaped any failed claim.
		stillActive, _ := uow.Listing(lst.ID)
		assert.Equal(t, listing.StatusActive, stillActive.Status)
		assert.Empty(t, notifier.Orders)
	})

	t.Run("re-claiming the same pairing conflicts", func(t *testing.T) {
		uow, _, cmd := newClaimFixture()
		seller := verifiedUser("ava")
		buyer := verifiedUser("ben")
		lst := activeListing(seller, cents(900))
		uow.PutUser(seller)
		uow.PutUser(buyer)
		uow.PutListing(lst)

		_, err := cmd.Claim(ctx, lst.ID, buyer.ID)
		require.NoError(t, err)

		// Seller relists for the same date; the derived id collides.
		relisted := activeListing(seller, cents(900))
		uow.PutListing(relisted)

		_, err = cmd.Claim(ctx, relisted.ID, buyer.ID)
		assert.ErrorIs(t, err, commands.ErrOrderAlreadyExists)

		// The failed claim rolled back: the relisting stays active.
		after, _ := uow.Listing(relisted.ID)
		assert.Equal(t, listing.StatusActive, after.Status)
	})

	t.Run("notifier failure does not fail the claim", func(t *testing.T) {
		uow, notifier, cmd := newClaimFixture()
		notifier.Err = errors.New("redis down")

		seller := verifiedUser("ava")
		buyer := verifiedUser("ben")
		lst := activeListing(seller, nil)
		uow.PutUser(seller)
		uow.PutUser(buyer)
		uow.PutListing(lst)

		snap, err := cmd.Claim(ctx, lst.ID, buyer.ID)
		require.NoError(t, err)

		_, ok := uow.Order(snap.ID)
		assert.True(t, ok)
	})
}
