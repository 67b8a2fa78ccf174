package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/vaptnotify/internal/config"
	"github.com/dmitrymomot/vaptnotify/pkg/mailer/resend"
	"github.com/dmitrymomot/vaptnotify/pkg/mailer/sendgrid"
)

func TestProvider(t *testing.T) {
	t.Parallel()

	t.Run("sendgrid", func(t *testing.T) {
		t.Parallel()

		s := provider(config.Email{Provider: config.ProviderSendGrid, SenderEmail: "a@example.com"})("key")
		assert.IsType(t, &sendgrid.Sender{}, s)
	})

	t.Run("resend", func(t *testing.T) {
		t.Parallel()

		s := provider(config.Email{Provider: config.ProviderResend, SenderEmail: "a@example.com"})("key")
		assert.IsType(t, &resend.Sender{}, s)
	})
}
