package bootstrap

import (
	"context"
	"log/slog"

	"swipemarket/internal/infra/notify"
	"swipemarket/internal/pkg/config"
	"swipemarket/internal/usecase/commands"

	"github.com/hibiken/asynq"
	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewNotifier,
		func() notify.PushSender { return notify.LogSender{} },
		notify.NewProcessor,
	),
	fx.Invoke(StartWorker),
)

// NewNotifier wires the asynq client when push is enabled; otherwise claims
// proceed with a no-op fan-out.
func NewNotifier(lc fx.Lifecycle, cfg config.Config) commands.Notifier {
	if !cfg.Notify.Enabled {
		return notify.NopNotifier{}
	}

	client := notify.NewAsynqClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return notify.NewEnqueuer(client)
}

func StartWorker(lc fx.Lifecycle, cfg config.Config, processor *notify.Processor) {
	if !cfg.Notify.Enabled {
		return
	}

	srv := notify.NewServer(cfg.Redis, cfg.Notify)
	mux := asynq.NewServeMux()
	processor.RegisterHandlers(mux)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				if err := srv.Run(mux); err != nil {
					slog.Error("push worker stopped", "error", err.Error())
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			srv.Shutdown()
			return nil
		},
	})
}
