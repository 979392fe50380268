package usecases

import (
	"context"
)

// EmailSender delivers a markdown body to one recipient.
type EmailSender interface {
	Send(to, subject, markdownBody string) error
}

// Broker forwards events to downstream consumers.
type Broker interface {
	Publish(ctx context.Context, routingKey, messageID string, payload any) error
}
