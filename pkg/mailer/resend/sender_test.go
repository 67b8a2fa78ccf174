package resend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vaptnotify/pkg/mailer"
	"github.com/dmitrymomot/vaptnotify/pkg/mailer/resend"
)

func TestSender_Send(t *testing.T) {
	t.Parallel()

	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"}`))
	}))
	defer srv.Close()

	s := resend.New(resend.Config{
		APIKey:      "re_test",
		SenderEmail: "ops@example.com",
		SenderName:  "VAPT Desk",
		BaseURL:     srv.URL,
	})

	err := s.Send(context.Background(), &mailer.Email{
		To:      []string{"ops@example.com"},
		Subject: "New VAPT Assessment Request - Acme",
		HTML:    "<p>hello</p>",
	})
	require.NoError(t, err)

	require.Equal(t, `"VAPT Desk" <ops@example.com>`, got["from"])
	require.Equal(t, "New VAPT Assessment Request - Acme", got["subject"])
	require.Equal(t, "<p>hello</p>", got["html"])
	require.Equal(t, []any{"ops@example.com"}, got["to"])
}

func TestSender_Send_ProviderError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid from field"}`))
	}))
	defer srv.Close()

	s := resend.New(resend.Config{APIKey: "re_test", SenderEmail: "ops@example.com", BaseURL: srv.URL})

	err := s.Send(context.Background(), &mailer.Email{
		To:      []string{"ops@example.com"},
		Subject: "s",
		HTML:    "<p>h</p>",
	})
	require.Error(t, err)
}

func TestSender_Send_EmptyID(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	s := resend.New(resend.Config{APIKey: "re_test", SenderEmail: "ops@example.com", BaseURL: srv.URL})

	err := s.Send(context.Background(), &mailer.Email{
		To:      []string{"ops@example.com"},
		Subject: "s",
		HTML:    "<p>h</p>",
	})
	require.ErrorIs(t, err, resend.ErrNotAccepted)
}

func TestSender_Send_InvalidEmail(t *testing.T) {
	t.Parallel()

	s := resend.New(resend.Config{APIKey: "re_test"})

	err := s.Send(context.Background(), &mailer.Email{To: []string{"a@example.com"}, HTML: "x"})
	require.ErrorIs(t, err, mailer.ErrNoSubject)
}
