//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"swipemarket/internal/domain/listing"
	"swipemarket/internal/domain/order"
	"swipemarket/internal/pkg/clock"
	"swipemarket/internal/pkg/config"
	"swipemarket/internal/usecase/commands"
	"swipemarket/internal/usecase/jobs"
	"swipemarket/tests/common/fakes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full order lifecycle: listing, claim, overnight sweep, mutual ratings.
func TestOrderLifecycleScenario(t *testing.T) {
	ctx := context.Background()

	uow := fakes.NewUnitOfWork()
	clk := clock.NewMockClock(testNow)
	notifier := &fakes.RecordingNotifier{}

	orderCmd := commands.NewOrderCommands(uow, clk, notifier)
	listingCmd := commands.NewListingCommands(uow, clk)
	lifecycle := jobs.NewLifecycleJobs(uow, clk, config.JobsConfig{WalkInPriceCents: 1700})

	seller := verifiedUser("ava")
	buyer := verifiedUser("ben")
	uow.PutUser(seller)
	uow.PutUser(buyer)

	// Seller lists a swipe for pickup in four days.
	lst, err := listingCmd.Create(ctx, seller.ID, createParams())
	require.NoError(t, err)

	// Buyer claims it.
	o, err := orderCmd.Claim(ctx, lst.ID, buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{o.ID}, notifier.Orders)

	claimed, _ := uow.Listing(lst.ID)
	assert.Equal(t, listing.StatusClaimed, claimed.Status)

	// The midnight sweep after the transaction date settles the order.
	clk.Set(testTxDate.Add(12 * time.Hour))
	_, err = lifecycle.ExpireListings(ctx)
	require.NoError(t, err)
	result, err := lifecycle.CompleteOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, jobs.CompleteOrdersResult{Completed: 1, UsersUpdated: 2}, result)

	settled, _ := uow.Order(o.ID)
	assert.Equal(t, order.StatusCompleted, settled.Status)

	sellerAfter, _ := uow.User(seller.ID)
	assert.Equal(t, int64(1), sellerAfter.TransactionsCompleted)
	assert.Equal(t, int64(900), sellerAfter.MoneyEarnedCents)
	buyerAfter, _ := uow.User(buyer.ID)
	assert.Equal(t, int64(800), buyerAfter.MoneySavedCents)

	// Both sides rate; each fold weights by the completed-transaction count,
	// with the unrated default of 5.0 as the prior: (1*5.0 + 4) / 2.
	rate, err := orderCmd.Rate(ctx, o.ID, buyer.ID, 4, nil)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, rate.NewStars, 1e-9)

	rate, err = orderCmd.Rate(ctx, o.ID, seller.ID, 5, nil)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, rate.NewStars, 1e-9)

	final, _ := uow.Order(o.ID)
	assert.True(t, final.BuyerHasRated)
	assert.True(t, final.SellerHasRated)

	// A repeated sweep changes nothing further.
	result, err = lifecycle.CompleteOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, jobs.CompleteOrdersResult{}, result)
}
