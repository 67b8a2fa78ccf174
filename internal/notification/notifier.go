package notification

import (
	"context"
	"log/slog"
	netmail "net/mail"

	"github.com/dmitrymomot/vaptnotify/pkg/logger"
	"github.com/dmitrymomot/vaptnotify/pkg/mailer"
)

// DefaultSenderEmail is used when Config.SenderEmail is empty.
const DefaultSenderEmail = "noreply@example.com"

// Config holds notifier configuration, injected at startup.
type Config struct {
	APIKey      string
	SenderEmail string // also the recipient
	SenderName  string
}

// Provider builds a mailer.Sender for the given API key.
// It is only invoked when the key is non-empty.
type Provider func(apiKey string) mailer.Sender

// Notifier emails each submission to the configured sender address.
// It holds no per-submission state and is safe for concurrent use.
type Notifier struct {
	sender   mailer.Sender // nil when not configured
	renderer *mailer.Renderer
	logger   *slog.Logger
	from     string
	to       string
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithLogger sets the logger used for delivery logs.
func WithLogger(l *slog.Logger) Option {
	return func(n *Notifier) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithRenderer replaces the built-in templates.
// The renderer must provide a "submission" template set.
func WithRenderer(r *mailer.Renderer) Option {
	return func(n *Notifier) {
		if r != nil {
			n.renderer = r
		}
	}
}

// New creates a Notifier. The provider is not built when cfg.APIKey is empty;
// every Send then fails with ErrNotConfigured.
func New(cfg Config, provider Provider, opts ...Option) *Notifier {
	if cfg.SenderEmail == "" {
		cfg.SenderEmail = DefaultSenderEmail
	}

	n := &Notifier{
		renderer: mailer.NewRenderer(Templates()),
		logger:   logger.NewNope(),
		from:     mailer.Recipient(cfg.SenderName, cfg.SenderEmail),
		to:       cfg.SenderEmail,
	}
	for _, opt := range opts {
		opt(n)
	}

	if cfg.APIKey != "" && provider != nil {
		n.sender = provider(cfg.APIKey)
	}

	return n
}

// Send renders rec and delivers it in a single provider call.
// It returns true only when the provider accepted the message. Errors are
// *DeliveryError values matching ErrNotConfigured or ErrDeliveryFailed.
// Nothing is retried.
func (n *Notifier) Send(ctx context.Context, rec Record) (bool, error) {
	if n.sender == nil {
		return false, &DeliveryError{Kind: KindConfigurationMissing}
	}

	out, err := n.renderer.Render(submissionTemplate, NewView(rec))
	if err != nil {
		return false, &DeliveryError{Kind: KindDeliveryFailed, Err: err}
	}

	email := &mailer.Email{
		From:    n.from,
		To:      []string{n.to},
		Subject: out.Subject,
		HTML:    out.HTML,
		Text:    out.Text,
		ReplyTo: replyTo(rec),
	}

	if err := n.sender.Send(ctx, email); err != nil {
		return false, &DeliveryError{Kind: KindDeliveryFailed, Err: err}
	}

	n.logger.InfoContext(ctx, "submission email sent",
		slog.String("subject", email.Subject),
		slog.String("recipient", n.to),
		slog.String("submission_id", rec.Text(keyID)),
	)

	return true, nil
}

// Healthcheck reports ErrNotConfigured while no provider is available.
// Its signature matches health.CheckFunc.
func (n *Notifier) Healthcheck(context.Context) error {
	if n.sender == nil {
		return ErrNotConfigured
	}
	return nil
}

// replyTo addresses replies to the submitter. It is empty when the
// submitted email does not parse as an address.
func replyTo(rec Record) string {
	if !rec.Has(keyEmail) {
		return ""
	}
	addr, err := netmail.ParseAddress(rec.Text(keyEmail))
	if err != nil {
		return ""
	}
	if rec.Has(keyPrimaryContactName) {
		return mailer.Recipient(rec.Text(keyPrimaryContactName), addr.Address)
	}
	return addr.Address
}
