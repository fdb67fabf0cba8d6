//go:build unit

package commands_test

import (
	"context"
	"testing"

	"swipemarket/internal/domain/order"
	"swipemarket/internal/usecase/commands"
	"swipemarket/tests/common/fakes"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkNotified(t *testing.T) {
	ctx := context.Background()

	setup := func() (*fakes.UnitOfWork, commands.NotificationCommands, string, uuid.UUID, uuid.UUID) {
		uow := fakes.NewUnitOfWork()
		cmd := commands.NewNotificationCommands(uow)

		seller := verifiedUser("ava")
		buyer := verifiedUser("ben")
		o := activeOrder(seller, buyer)
		uow.PutOrder(o)
		return uow, cmd, o.ID, seller.ID, buyer.ID
	}

	t.Run("raises the recipient's flag only", func(t *testing.T) {
		uow, cmd, orderID, sellerID, _ := setup()

		require.NoError(t, cmd.MarkNotified(ctx, orderID, sellerID))

		stored, _ := uow.Order(orderID)
		assert.True(t, stored.SellerHasNotifs)
		assert.False(t, stored.BuyerHasNotifs)
	})

	t.Run("buyer flag", func(t *testing.T) {
		uow, cmd, orderID, _, buyerID := setup()

		require.NoError(t, cmd.MarkNotified(ctx, orderID, buyerID))

		stored, _ := uow.Order(orderID)
		assert.True(t, stored.BuyerHasNotifs)
		assert.False(t, stored.SellerHasNotifs)
	})

	t.Run("missing order is a silent no-op", func(t *testing.T) {
		_, cmd, _, sellerID, _ := setup()

		assert.NoError(t, cmd.MarkNotified(ctx, "missing_order", sellerID))
	})

	t.Run("cancelled order is a no-op", func(t *testing.T) {
		uow, cmd, orderID, sellerID, _ := setup()

		stored, _ := uow.Order(orderID)
		stored.Status = order.StatusCancelled
		uow.PutOrder(stored)

		require.NoError(t, cmd.MarkNotified(ctx, orderID, sellerID))

		after, _ := uow.Order(orderID)
		assert.False(t, after.SellerHasNotifs)
	})

	t.Run("non-participant recipient is a no-op", func(t *testing.T) {
		uow, cmd, orderID, _, _ := setup()

		require.NoError(t, cmd.MarkNotified(ctx, orderID, uuid.New()))

		after, _ := uow.Order(orderID)
		assert.False(t, after.SellerHasNotifs)
		assert.False(t, after.BuyerHasNotifs)
	})
}
