package commands

import (
	"context"
	"log/slog"

	"swipemarket/internal/domain/order"
	"swipemarket/internal/infra"
	"swipemarket/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationCommands interface {
	// MarkNotified raises the recipient's unread flag on an active order.
	// It is best-effort: a missing or cancelled order, or a recipient who
	// is not a participant, is a logged no-op rather than an error.
	MarkNotified(ctx context.Context, orderID string, recipientID uuid.UUID) error
}

type notificationCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewNotificationCommands(uow shared.UnitOfWork) NotificationCommands {
	return &notificationCommandsImpl{uow: uow}
}

func (c *notificationCommandsImpl) MarkNotified(ctx context.Context, orderID string, recipientID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().OrderByID(ctx, orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				slog.Info("skipping notify flag for missing order", "order_id", orderID)
				return nil
			}
			return err
		}
		if snap.Status == order.StatusCancelled {
			return nil
		}

		side, ok := order.SideOf(snap.SellerID, snap.BuyerID, recipientID)
		if !ok {
			slog.Warn("notify recipient is not a participant",
				"order_id", orderID, "recipient_id", recipientID)
			return nil
		}
		return tx.Orders().SetNotified(ctx, tx.DB(), orderID, side)
	})
}
