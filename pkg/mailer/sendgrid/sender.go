package sendgrid

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	netmail "net/mail"
	"strings"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/dmitrymomot/vaptnotify/pkg/mailer"
)

const sendEndpoint = "/v3/mail/send"

// ErrNotAccepted indicates SendGrid answered with a status other than 202 Accepted.
var ErrNotAccepted = errors.New("sendgrid: email not accepted")

// Sender implements mailer.Sender using the SendGrid v3 mail API.
type Sender struct {
	config Config
}

// New creates a new SendGrid sender.
func New(cfg Config) *Sender {
	return &Sender{config: cfg}
}

// Send implements mailer.Sender.
// SendGrid queues mail asynchronously; only 202 Accepted counts as success.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}

	msg, err := s.buildMessage(email)
	if err != nil {
		return err
	}

	req := sendgrid.GetRequest(s.config.APIKey, sendEndpoint, strings.TrimSuffix(s.config.BaseURL, "/"))
	req.Method = rest.Post
	req.Body = mail.GetRequestBody(msg)

	resp, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("sendgrid: failed to send email: %w", err)
	}
	if resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("%w: status %d: %s", ErrNotAccepted, resp.StatusCode, strings.TrimSpace(resp.Body))
	}

	return nil
}

func (s *Sender) buildMessage(email *mailer.Email) (*mail.SGMailV3, error) {
	from := email.From
	if from == "" {
		from = mailer.Recipient(s.config.SenderName, s.config.SenderEmail)
	}
	fromAddr, err := parseAddress(from)
	if err != nil {
		return nil, fmt.Errorf("sendgrid: invalid sender %q: %w", from, err)
	}

	p := mail.NewPersonalization()
	for _, to := range email.To {
		addr, err := parseAddress(to)
		if err != nil {
			return nil, fmt.Errorf("sendgrid: invalid recipient %q: %w", to, err)
		}
		p.AddTos(addr)
	}

	msg := mail.NewV3Mail()
	msg.SetFrom(fromAddr)
	msg.Subject = email.Subject
	msg.AddPersonalizations(p)

	if email.ReplyTo != "" {
		replyTo, err := parseAddress(email.ReplyTo)
		if err != nil {
			return nil, fmt.Errorf("sendgrid: invalid reply-to %q: %w", email.ReplyTo, err)
		}
		msg.SetReplyTo(replyTo)
	}

	// SendGrid requires text/plain to precede text/html.
	if email.Text != "" {
		msg.AddContent(mail.NewContent("text/plain", email.Text))
	}
	msg.AddContent(mail.NewContent("text/html", email.HTML))

	return msg, nil
}

func parseAddress(s string) (*mail.Email, error) {
	addr, err := netmail.ParseAddress(s)
	if err != nil {
		return nil, err
	}
	return mail.NewEmail(addr.Name, addr.Address), nil
}
