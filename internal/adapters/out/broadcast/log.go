package broadcast

import (
	"context"
	"log/slog"
)

// LogBroadcaster writes every event to the log. It is the sink for setups
// without Redis or RabbitMQ.
type LogBroadcaster struct {
	logger *slog.Logger
}

func NewLogBroadcaster(logger *slog.Logger) *LogBroadcaster {
	return &LogBroadcaster{logger: logger.With("component", "log_broadcaster")}
}

func (b *LogBroadcaster) Publish(ctx context.Context, topic string, payload any) error {
	b.logger.InfoContext(ctx, "Broadcast", "topic", topic, "payload", payload)
	return nil
}
