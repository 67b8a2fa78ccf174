package resend

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/vaptnotify/pkg/mailer"
)

// ErrNotAccepted indicates Resend answered without a message id.
var ErrNotAccepted = errors.New("resend: email not accepted")

// Sender implements mailer.Sender using the Resend API.
type Sender struct {
	client *resend.Client
	config Config
}

// New creates a new Resend sender.
// An unparsable BaseURL is ignored and the default endpoint is used.
func New(cfg Config) *Sender {
	client := resend.NewClient(cfg.APIKey)
	if cfg.BaseURL != "" {
		// Request paths are resolved relative to the base, so it must end in a slash.
		if u, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/") + "/"); err == nil {
			client.BaseURL = u
		}
	}

	return &Sender{
		client: client,
		config: cfg,
	}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}

	from := email.From
	if from == "" {
		from = mailer.Recipient(s.config.SenderName, s.config.SenderEmail)
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
	}

	resp, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}
	if resp == nil || resp.Id == "" {
		return ErrNotAccepted
	}

	return nil
}
