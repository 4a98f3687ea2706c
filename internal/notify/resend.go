package notify

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/resend/resend-go/v2"
)

type emailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendNotifier emails every message to a fixed recipient through Resend.
type ResendNotifier struct {
	emails emailSender
	from   string
	to     string
	logger *slog.Logger
}

func NewResendNotifier(apiKey, from, to string, logger *slog.Logger) *ResendNotifier {
	return &ResendNotifier{
		emails: resend.NewClient(apiKey).Emails,
		from:   from,
		to:     to,
		logger: logger,
	}
}

func (n *ResendNotifier) Publish(ctx context.Context, message Message) error {
	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{n.to},
		Subject: message.Subject,
		Text:    message.Body,
		Html:    renderHTML(message),
	}

	sent, err := n.emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	n.logger.InfoContext(ctx, "notification email sent",
		slog.String("email_id", sent.Id),
		slog.String("to", n.to),
	)
	return nil
}

func renderHTML(message Message) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 24px;">`)
	fmt.Fprintf(&b, `<h2 style="color: #333;">%s</h2>`, html.EscapeString(message.Subject))
	for _, line := range strings.Split(message.Body, "\n") {
		fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(line))
	}
	b.WriteString("</div>")
	return b.String()
}
