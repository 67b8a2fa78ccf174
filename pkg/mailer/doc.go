// Package mailer provides a provider-agnostic email type, the Sender interface
// that delivery providers implement, and a template Renderer.
//
// # Architecture
//
//   - Email: a fully-prepared message (from, to, subject, HTML and text bodies)
//   - Sender: interface implemented by providers (see the sendgrid and resend sub-packages)
//   - Renderer: executes HTML templates with YAML frontmatter plus an optional plain text twin
//
// # Templates
//
// A template set named "submission" consists of "submission.html" and, optionally,
// "submission.txt". The HTML file may begin with frontmatter:
//
//	---
//	Subject: 'New request from {{.Name}}'
//	---
//	<p>Hello {{.Name}}</p>
//
// The Subject value is executed as a text/template against the same data as the body.
// HTML bodies go through html/template, so interpolated values are escaped.
//
// # Usage
//
//	renderer := mailer.NewRenderer(templatesFS)
//	out, err := renderer.Render("submission", view)
//	if err != nil {
//		return err
//	}
//
//	sender := sendgrid.New(sendgrid.Config{APIKey: key, SenderEmail: "team@example.com"})
//	err = sender.Send(ctx, &mailer.Email{
//		To:      []string{"team@example.com"},
//		Subject: out.Subject,
//		HTML:    out.HTML,
//		Text:    out.Text,
//	})
//
// # Custom Providers
//
// Implement Sender to add another provider. Send must make a single attempt and
// return nil only when the provider accepted the message.
//
// # Errors
//
//   - ErrNoRecipient, ErrNoSubject, ErrNoContent: returned by Email.Validate
//   - ErrTemplateNotFound: template file missing from the filesystem
//   - ErrInvalidFrontmatter: malformed YAML frontmatter
//   - ErrRenderFailed: template parse or execution failure
package mailer
