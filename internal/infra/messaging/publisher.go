// Package messaging delivers encoded messages to a broker. The notifier picks
// one Publisher at startup from NOTIFY_DRIVER.
package messaging

import (
	"context"
	"log/slog"
)

const ContentTypeJSON = "application/json"

// Message is one encoded payload. Key routes related messages together; the
// notifier uses the recipient's user id.
type Message struct {
	Key  string
	Type string
	Body []byte
}

type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// LogPublisher writes messages to the application log instead of a broker.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, msg Message) error {
	p.logger.InfoContext(ctx, "Notification published",
		slog.String("key", msg.Key),
		slog.String("type", msg.Type),
		slog.String("body", string(msg.Body)),
	)
	return nil
}

func (p *LogPublisher) Close() error { return nil }
