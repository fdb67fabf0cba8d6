package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"swipemarket/internal/domain/order"
	"swipemarket/internal/infra"
	"swipemarket/internal/pkg/config"
	"swipemarket/internal/usecase/commands"
	"swipemarket/internal/usecase/queries"
	"swipemarket/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Push is one device notification ready for delivery.
type Push struct {
	Token string
	Title string
	Body  string
	Badge int
	Data  map[string]string
}

// PushSender delivers a push to a device. The default implementation only
// logs; wiring a real provider (Expo, FCM) is a deployment concern.
type PushSender interface {
	Send(ctx context.Context, p Push) error
}

type LogSender struct{}

func (LogSender) Send(_ context.Context, p Push) error {
	slog.Info("push notification",
		"title", p.Title, "body", p.Body, "badge", p.Badge, "data", p.Data)
	return nil
}

// Processor consumes push tasks: it raises the recipient's unread flag,
// recomputes their badge, and hands the assembled push to the sender.
type Processor struct {
	uow    shared.UnitOfWork
	marks  commands.NotificationCommands
	badges queries.NotificationQueries
	sender PushSender
}

func NewProcessor(
	uow shared.UnitOfWork,
	marks commands.NotificationCommands,
	badges queries.NotificationQueries,
	sender PushSender,
) *Processor {
	return &Processor{uow: uow, marks: marks, badges: badges, sender: sender}
}

func (p *Processor) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeOrderClaimed, p.HandleOrderClaimed)
	mux.HandleFunc(TypeMessageReceived, p.HandleMessageReceived)
}

func (p *Processor) HandleOrderClaimed(ctx context.Context, t *asynq.Task) error {
	var payload OrderClaimedPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid order-claimed payload: %v: %w", err, asynq.SkipRetry)
	}

	snap, err := p.uow.Reads().OrderByID(ctx, payload.OrderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Info("dropping push for missing order", "order_id", payload.OrderID)
			return nil
		}
		return err
	}

	// The seller is the one surprised by a claim; the buyer initiated it.
	body := fmt.Sprintf("%s claimed your swipe at %s", snap.BuyerName, snap.DiningHall)
	return p.notify(ctx, snap.SellerID, payload.OrderID, Push{
		Title: "Your swipe was claimed",
		Body:  body,
		Data:  map[string]string{"type": "order_claimed", "order_id": payload.OrderID},
	})
}

func (p *Processor) HandleMessageReceived(ctx context.Context, t *asynq.Task) error {
	var payload MessageReceivedPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid message-received payload: %v: %w", err, asynq.SkipRetry)
	}

	snap, err := p.uow.Reads().OrderByID(ctx, payload.OrderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Info("dropping push for missing order", "order_id", payload.OrderID)
			return nil
		}
		return err
	}

	senderSide, ok := order.SideOf(snap.SellerID, snap.BuyerID, payload.SenderID)
	if !ok {
		slog.Warn("message sender is not a participant, dropping push",
			"order_id", payload.OrderID, "sender_id", payload.SenderID)
		return nil
	}
	recipientID := snap.SellerID
	senderName := snap.BuyerName
	if senderSide == order.SideSeller {
		recipientID = snap.BuyerID
		senderName = snap.SellerName
	}

	return p.notify(ctx, recipientID, payload.OrderID, Push{
		Title: fmt.Sprintf("New message from %s", senderName),
		Body:  payload.Preview,
		Data:  map[string]string{"type": "message_received", "order_id": payload.OrderID},
	})
}

func (p *Processor) notify(ctx context.Context, recipientID uuid.UUID, orderID string, push Push) error {
	if err := p.marks.MarkNotified(ctx, orderID, recipientID); err != nil {
		return err
	}
	push.Badge = p.badges.UnreadBadge(ctx, recipientID)

	recipient, err := p.uow.Reads().UserByID(ctx, recipientID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Info("dropping push for missing recipient", "recipient_id", recipientID)
			return nil
		}
		return err
	}
	if recipient.PushToken == nil || *recipient.PushToken == "" {
		slog.Info("recipient has no push token, flag raised without push",
			"recipient_id", recipientID)
		return nil
	}

	push.Token = *recipient.PushToken
	return p.sender.Send(ctx, push)
}

func NewServer(redisCfg config.RedisConfig, notifyCfg config.NotifyConfig) *asynq.Server {
	return asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     redisCfg.Addr,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		},
		asynq.Config{
			Concurrency: notifyCfg.Concurrency,
			Queues:      map[string]int{QueuePush: 1},
		},
	)
}
