// Package notification turns a VAPT assessment form submission into an email
// and hands it to a transactional email provider.
//
// A Record is projected into a View by the pure function NewView; the View's
// Show* flags decide which optional sections exist, and the embedded templates
// decide how they look. Notifier.Send makes exactly one provider call per
// submission and reports the outcome as (true, nil) or a *DeliveryError.
//
//	n := notification.New(notification.Config{
//		APIKey:      key,
//		SenderEmail: "security@example.com",
//	}, func(key string) mailer.Sender {
//		return sendgrid.New(sendgrid.Config{APIKey: key})
//	})
//
//	ok, err := n.Send(ctx, notification.Record{"organizationName": "Acme"})
//	switch {
//	case errors.Is(err, notification.ErrNotConfigured):
//		// no API key; nothing was sent
//	case errors.Is(err, notification.ErrDeliveryFailed):
//		// provider rejected or errored; err wraps the cause
//	}
package notification
