package notify

import (
	"encoding/json"
	"time"

	"swipemarket/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	// QueuePush isolates push fan-out from any future task types.
	QueuePush = "push"

	TypeOrderClaimed    = "push:order_claimed"
	TypeMessageReceived = "push:message_received"
)

var errEncodeTaskPayload = errs.New("failed to encode task payload")

type OrderClaimedPayload struct {
	OrderID string `json:"order_id"`
}

// MessageReceivedPayload is enqueued by the chat service when a participant
// sends an in-order message; this service only fans out the push.
type MessageReceivedPayload struct {
	OrderID  string    `json:"order_id"`
	SenderID uuid.UUID `json:"sender_id"`
	Preview  string    `json:"preview"`
}

func NewOrderClaimedTask(orderID string) (*asynq.Task, error) {
	payload, err := json.Marshal(OrderClaimedPayload{OrderID: orderID})
	if err != nil {
		return nil, errs.Mark(err, errEncodeTaskPayload)
	}
	return asynq.NewTask(TypeOrderClaimed, payload, taskOptions()...), nil
}

func NewMessageReceivedTask(orderID string, senderID uuid.UUID, preview string) (*asynq.Task, error) {
	payload, err := json.Marshal(MessageReceivedPayload{
		OrderID:  orderID,
		SenderID: senderID,
		Preview:  preview,
	})
	if err != nil {
		return nil, errs.Mark(err, errEncodeTaskPayload)
	}
	return asynq.NewTask(TypeMessageReceived, payload, taskOptions()...), nil
}

func taskOptions() []asynq.Option {
	return []asynq.Option{
		asynq.Queue(QueuePush),
		asynq.MaxRetry(3),
		asynq.Timeout(30 * time.Second),
	}
}
