package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conandweb/internal/domain"
)

func TestNewMailer(t *testing.T) {
	tests := []struct {
		name    string
		config  MailerConfig
		wantErr error
	}{
		{name: "noop", config: MailerConfig{Provider: "noop"}},
		{name: "mailjet", config: MailerConfig{Provider: "mailjet", Mailjet: MailjetConfig{APIKey: "k", APISecret: "s"}}},
		{name: "mailjet without credentials", config: MailerConfig{Provider: "mailjet"}, wantErr: domain.ErrEmailNotConfigured},
		{name: "ses", config: MailerConfig{Provider: "ses", SES: SESConfig{Region: "eu-west-1", AccessKeyID: "id", SecretAccessKey: "secret"}}},
		{name: "ses without credentials", config: MailerConfig{Provider: "ses", SES: SESConfig{Region: "eu-west-1"}}, wantErr: domain.ErrEmailNotConfigured},
		{name: "unknown provider", config: MailerConfig{Provider: "smtp"}, wantErr: domain.ErrEmailNotConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMailer(tt.config)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, m)
		})
	}
}

func TestNoopMailer_Send(t *testing.T) {
	m, err := NewMailer(MailerConfig{Provider: "noop"})
	require.NoError(t, err)
	require.NoError(t, m.Send(context.Background(), &domain.EmailMessage{To: domain.EmailAddress{Email: "info@conand.ad"}}))
}

type mailjetRecipient struct {
	Email string
	Name  string
}

type mailjetMessage struct {
	From     mailjetRecipient
	To       []mailjetRecipient
	ReplyTo  *mailjetRecipient
	Subject  string
	TextPart string
	HTMLPart string
}

func TestMailjetMailer_Send(t *testing.T) {
	var got struct{ Messages []mailjetMessage }
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "key", user)
		assert.Equal(t, "secret", pass)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Messages":[{"Status":"success","To":[{"Email":"info@conand.ad","MessageUUID":"u-1","MessageID":1,"MessageHref":"https://api.mailjet.com/v3/REST/message/1"}]}]}`))
	}))
	defer srv.Close()

	m, err := NewMailer(MailerConfig{
		Provider:    "mailjet",
		FromAddress: "noreply@devs0.ad",
		FromName:    "CONAND Website",
		Mailjet:     MailjetConfig{APIKey: "key", APISecret: "secret", BaseURL: srv.URL},
	})
	require.NoError(t, err)

	err = m.Send(context.Background(), &domain.EmailMessage{
		To:      domain.EmailAddress{Email: "info@conand.ad", Name: "CONAND"},
		ReplyTo: &domain.EmailAddress{Email: "ada@example.com", Name: "Ada"},
		Subject: "[CONAND Contact] Hola",
		HTML:    "<p>Hola</p>",
		Text:    "Hola",
	})
	require.NoError(t, err)
	require.Len(t, got.Messages, 1)
	msg := got.Messages[0]
	assert.Equal(t, mailjetRecipient{Email: "noreply@devs0.ad", Name: "CONAND Website"}, msg.From)
	assert.Equal(t, []mailjetRecipient{{Email: "info@conand.ad", Name: "CONAND"}}, msg.To)
	require.NotNil(t, msg.ReplyTo)
	assert.Equal(t, "ada@example.com", msg.ReplyTo.Email)
	assert.Equal(t, "[CONAND Contact] Hola", msg.Subject)
	assert.Equal(t, "Hola", msg.TextPart)
	assert.Equal(t, "<p>Hola</p>", msg.HTMLPart)
}
