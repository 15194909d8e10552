package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"boat-reservation/internal/infra/lock"
	"boat-reservation/internal/infra/messaging"
	"boat-reservation/internal/infra/notify"
	"boat-reservation/internal/pkg/clock"
	"boat-reservation/internal/pkg/config"
	"boat-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewPublisher,
		NewLocker,
		fx.Annotate(
			NewNotifier,
			fx.As(new(shared.Notifier)),
		),
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (messaging.Publisher, error) {
	var (
		pub messaging.Publisher
		err error
	)
	switch cfg.Notify.Driver {
	case "", "log":
		pub = messaging.NewLogPublisher(logger)
	case "rabbitmq":
		pub, err = messaging.NewRabbitMQPublisher(cfg.Notify.RabbitMQURL, cfg.Notify.RabbitMQQueue)
	case "kafka":
		producer, perr := messaging.NewKafkaProducer(cfg.Notify.KafkaBrokers)
		if perr != nil {
			return nil, perr
		}
		pub = messaging.NewKafkaPublisher(producer, cfg.Notify.KafkaTopic)
	default:
		return nil, fmt.Errorf("unknown NOTIFY_DRIVER %q", cfg.Notify.Driver)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Notification publisher initialized", slog.String("driver", cfg.Notify.Driver))
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}

func NewNotifier(pub messaging.Publisher, clk clock.Clock, cfg config.Config) *notify.Service {
	return notify.NewService(pub, clk, cfg.Notify.Concurrency)
}

// NewLocker uses Redis when enabled so that several replicas never run the
// assignment batch at the same time.
func NewLocker(lc fx.Lifecycle, cfg config.Config) (shared.Locker, error) {
	if !cfg.Redis.Enabled {
		return lock.NewLocalLocker(), nil
	}

	client, err := lock.NewRedisClient(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return lock.NewRedisLocker(client), nil
}
