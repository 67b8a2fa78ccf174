package sendgrid_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vaptnotify/pkg/mailer"
	"github.com/dmitrymomot/vaptnotify/pkg/mailer/sendgrid"
)

type sgPayload struct {
	From struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"from"`
	ReplyTo *struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"reply_to"`
	Subject          string `json:"subject"`
	Personalizations []struct {
		To []struct {
			Email string `json:"email"`
		} `json:"to"`
	} `json:"personalizations"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
}

func newEmail() *mailer.Email {
	return &mailer.Email{
		To:      []string{"ops@example.com"},
		Subject: "New VAPT Assessment Request - Acme",
		HTML:    "<p>hello</p>",
		Text:    "hello",
	}
}

func TestSender_Send_Accepted(t *testing.T) {
	t.Parallel()

	var got sgPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/mail/send", r.URL.Path)
		assert.Equal(t, "Bearer SG.test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	s := sendgrid.New(sendgrid.Config{
		APIKey:      "SG.test",
		SenderEmail: "ops@example.com",
		SenderName:  "VAPT Desk",
		BaseURL:     srv.URL,
	})

	err := s.Send(context.Background(), newEmail())
	require.NoError(t, err)

	require.Equal(t, "ops@example.com", got.From.Email)
	require.Equal(t, "VAPT Desk", got.From.Name)
	require.Equal(t, "New VAPT Assessment Request - Acme", got.Subject)
	require.Len(t, got.Personalizations, 1)
	require.Len(t, got.Personalizations[0].To, 1)
	require.Equal(t, "ops@example.com", got.Personalizations[0].To[0].Email)
	require.Len(t, got.Content, 2)
	require.Equal(t, "text/plain", got.Content[0].Type)
	require.Equal(t, "text/html", got.Content[1].Type)
	require.Equal(t, "<p>hello</p>", got.Content[1].Value)
}

func TestSender_Send_NotAccepted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
	}{
		{"ok is not accepted", http.StatusOK},
		{"unauthorized", http.StatusUnauthorized},
		{"bad request", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"errors":[{"message":"nope"}]}`))
			}))
			defer srv.Close()

			s := sendgrid.New(sendgrid.Config{APIKey: "k", SenderEmail: "ops@example.com", BaseURL: srv.URL})

			err := s.Send(context.Background(), newEmail())
			require.ErrorIs(t, err, sendgrid.ErrNotAccepted)
		})
	}
}

func TestSender_Send_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	s := sendgrid.New(sendgrid.Config{APIKey: "k", SenderEmail: "ops@example.com", BaseURL: url})

	err := s.Send(context.Background(), newEmail())
	require.Error(t, err)
	require.NotErrorIs(t, err, sendgrid.ErrNotAccepted)
}

func TestSender_Send_InvalidEmail(t *testing.T) {
	t.Parallel()

	s := sendgrid.New(sendgrid.Config{APIKey: "k", SenderEmail: "ops@example.com"})

	err := s.Send(context.Background(), &mailer.Email{Subject: "x", HTML: "y"})
	require.ErrorIs(t, err, mailer.ErrNoRecipient)

	err = s.Send(context.Background(), &mailer.Email{To: []string{"not an address"}, Subject: "x", HTML: "y"})
	require.Error(t, err)
}

func TestSender_Send_SenderNameWithSpecials(t *testing.T) {
	t.Parallel()

	var got sgPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	s := sendgrid.New(sendgrid.Config{
		APIKey:      "k",
		SenderEmail: "sec@example.com",
		SenderName:  "Acme, Inc.",
		BaseURL:     srv.URL,
	})

	require.NoError(t, s.Send(context.Background(), newEmail()))
	require.Equal(t, "sec@example.com", got.From.Email)
	require.Equal(t, "Acme, Inc.", got.From.Name)

	email := newEmail()
	email.From = mailer.Recipient("Acme, Inc.", "sec@example.com")
	require.NoError(t, s.Send(context.Background(), email))
	require.Equal(t, "Acme, Inc.", got.From.Name)
}

func TestSender_Send_ReplyTo(t *testing.T) {
	t.Parallel()

	var got sgPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	s := sendgrid.New(sendgrid.Config{APIKey: "k", SenderEmail: "ops@example.com", BaseURL: srv.URL})

	email := newEmail()
	email.ReplyTo = mailer.Recipient("Jane Roe", "jane@acme.example")
	require.NoError(t, s.Send(context.Background(), email))

	require.NotNil(t, got.ReplyTo)
	require.Equal(t, "jane@acme.example", got.ReplyTo.Email)
	require.Equal(t, "Jane Roe", got.ReplyTo.Name)

	email.ReplyTo = "not an address"
	require.Error(t, s.Send(context.Background(), email))
}
