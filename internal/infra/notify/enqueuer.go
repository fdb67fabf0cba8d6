package notify

import (
	"context"

	"swipemarket/internal/pkg/config"
	"swipemarket/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

var errEnqueueTask = errs.New("failed to enqueue push task")

func NewAsynqClient(cfg config.RedisConfig) *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Enqueuer hands push work to the asynq queue. It implements
// commands.Notifier; callers treat failures as best-effort.
type Enqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

func (e *Enqueuer) OrderClaimed(ctx context.Context, orderID string) error {
	task, err := NewOrderClaimedTask(orderID)
	if err != nil {
		return err
	}
	if _, err := e.client.EnqueueContext(ctx, task); err != nil {
		return errs.Mark(err, errEnqueueTask)
	}
	return nil
}

func (e *Enqueuer) MessageReceived(ctx context.Context, orderID string, senderID uuid.UUID, preview string) error {
	task, err := NewMessageReceivedTask(orderID, senderID, preview)
	if err != nil {
		return err
	}
	if _, err := e.client.EnqueueContext(ctx, task); err != nil {
		return errs.Mark(err, errEnqueueTask)
	}
	return nil
}

// NopNotifier satisfies commands.Notifier when push delivery is disabled.
type NopNotifier struct{}

func (NopNotifier) OrderClaimed(context.Context, string) error { return nil }
