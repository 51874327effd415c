package email

import (
	"context"
	"errors"
	"net/smtp"
	"testing"

	"go-jobportal-backend/config"
	"go-jobportal-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishSendsHTMLMail(t *testing.T) {
	svc := NewService(&config.Config{
		SMTPHost: "smtp.example.com", SMTPPort: "587",
		SMTPUsername: "user", SMTPPassword: "pass", SMTPFromEmail: "noreply@example.com",
	})
	require.True(t, svc.IsConfigured())

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	svc.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	err := svc.Publish(context.Background(), domain.TopicSendMail, domain.Notification{
		To: "dev@example.com", Subject: "Hi", HTML: "<p>hello</p>",
	})

	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "noreply@example.com", gotFrom)
	assert.Equal(t, []string{"dev@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: Hi\r\n")
	assert.Contains(t, string(gotMsg), "Content-Type: text/html; charset=UTF-8")
	assert.Contains(t, string(gotMsg), "\r\n\r\n<p>hello</p>")
}

func TestPublishWrapsSendError(t *testing.T) {
	svc := NewService(&config.Config{})
	assert.False(t, svc.IsConfigured())
	svc.send = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("refused") }

	err := svc.Publish(context.Background(), domain.TopicSendMail, domain.Notification{To: "x@y.z"})
	assert.ErrorContains(t, err, "refused")
}
