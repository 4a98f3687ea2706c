package notify

import (
	"context"
	"fmt"
	"strings"

	"reviewhub-backend/internal/models"
)

// Notifier publishes messages to whoever moderates new reviews. The log
// implementation can be swapped for email without touching callers.
type Notifier interface {
	Publish(ctx context.Context, message Message) error
}

type Message struct {
	Subject string
	Body    string
}

// ReviewCreated formats the announcement for a newly submitted review.
func ReviewCreated(r *models.Review) Message {
	stars := strings.Repeat("★", r.Rating) + strings.Repeat("☆", max(0, 5-r.Rating))
	return Message{
		Subject: fmt.Sprintf("New %s review: %s", r.Type, r.ItemName),
		Body: fmt.Sprintf("%s reviewed %s (%s %s)\nRating: %s\n%s\n\n%s",
			r.UserName, r.ItemName, r.Type, r.ItemID, stars, r.Title, r.Content),
	}
}
