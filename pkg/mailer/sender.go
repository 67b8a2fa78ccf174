package mailer

import "context"

// Sender defines the minimal interface that email providers must implement.
// It accepts a fully-prepared Email and makes exactly one delivery attempt.
type Sender interface {
	// Send delivers an email message.
	// Returns nil only when the provider accepted the message.
	Send(ctx context.Context, email *Email) error
}
