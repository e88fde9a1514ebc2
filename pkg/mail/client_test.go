package mail

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMTPClient_Send(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	c := NewSMTPClient("smtp.example.com", 587, "user", "pass")
	c.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	err := c.Send(context.Background(), Message{
		From:    "noreply@example.com",
		To:      []string{"admin@example.com"},
		Subject: "New message",
		Body:    "Hello",
	})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "noreply@example.com", gotFrom)
	assert.Equal(t, []string{"admin@example.com"}, gotTo)

	text := string(gotMsg)
	assert.Contains(t, text, "Subject: New message\r\n")
	assert.Contains(t, text, "To: admin@example.com\r\n")
	assert.True(t, strings.HasSuffix(text, "\r\nHello"))
}

func TestSMTPClient_Send_Validation(t *testing.T) {
	c := NewSMTPClient("smtp.example.com", 25, "", "")
	c.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("sendMail must not be called for invalid messages")
		return nil
	}

	err := c.Send(context.Background(), Message{To: []string{"a@b.com"}})
	assert.Error(t, err)

	err = c.Send(context.Background(), Message{From: "a@b.com"})
	assert.Error(t, err)
}

func TestSMTPClient_Send_CancelledContext(t *testing.T) {
	c := NewSMTPClient("smtp.example.com", 25, "", "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Send(ctx, Message{From: "a@b.com", To: []string{"c@d.com"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSMTPClient_Send_PropagatesRelayError(t *testing.T) {
	c := NewSMTPClient("smtp.example.com", 25, "", "")
	relayErr := errors.New("relay refused")
	c.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		return relayErr
	}

	err := c.Send(context.Background(), Message{From: "a@b.com", To: []string{"c@d.com"}})
	assert.ErrorIs(t, err, relayErr)
}

func TestEncode_SanitizesSubjectHeader(t *testing.T) {
	msg := encode(Message{
		From:    "a@b.com",
		To:      []string{"c@d.com"},
		Subject: "Hi\r\nBcc: victim@example.com",
		Body:    "body",
	})
	text := string(msg)
	assert.NotContains(t, text, "\r\nBcc:", "injected text must not become its own header line")
	assert.Contains(t, text, "Subject: Hi  Bcc: victim@example.com\r\n")
}
