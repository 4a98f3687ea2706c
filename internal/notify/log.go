package notify

import (
	"context"
	"log/slog"
)

// LogNotifier writes messages to the service log instead of delivering them.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Publish(ctx context.Context, message Message) error {
	n.logger.InfoContext(ctx, "notification published",
		slog.String("subject", message.Subject),
		slog.String("body", message.Body),
	)
	return nil
}
