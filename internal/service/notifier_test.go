package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/pkg/mail"
)

// mockMailClient records sends and fails per recipient.
type mockMailClient struct {
	sent    []mail.Message
	failFor map[string]error // recipient address -> error
}

func (m *mockMailClient) Send(ctx context.Context, msg mail.Message) error {
	m.sent = append(m.sent, msg)
	for _, to := range msg.To {
		if err, ok := m.failFor[to]; ok {
			return err
		}
	}
	return nil
}

func testMessage() *model.ContactMessage {
	return &model.ContactMessage{
		ID:        "m1",
		Name:      "Jordan Lee",
		Email:     "jordan@example.com",
		Subject:   "Collab",
		Message:   "I would like to discuss a project with you.",
		Phone:     "+1 555 0100",
		Company:   "ACME",
		CreatedAt: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		IPAddress: "1.2.3.4",
	}
}

func TestNotifier_SendsBothEmails(t *testing.T) {
	client := &mockMailClient{}
	n := NewContactNotifier(client, "noreply@example.com", "admin@example.com")

	err := n.Notify(context.Background(), testMessage())
	require.NoError(t, err)
	require.Len(t, client.sent, 2)

	alert := client.sent[0]
	assert.Equal(t, []string{"admin@example.com"}, alert.To)
	assert.Equal(t, "noreply@example.com", alert.From)
	assert.Contains(t, alert.Subject, "Collab")
	assert.Contains(t, alert.Body, "Jordan Lee")
	assert.Contains(t, alert.Body, "jordan@example.com")
	assert.Contains(t, alert.Body, "+1 555 0100")
	assert.Contains(t, alert.Body, "ACME")
	assert.Contains(t, alert.Body, "I would like to discuss a project with you.")
	assert.Contains(t, alert.Body, "1.2.3.4")
	assert.Contains(t, alert.Body, "14 Mar 2025")

	ack := client.sent[1]
	assert.Equal(t, []string{"jordan@example.com"}, ack.To)
	assert.Contains(t, ack.Body, "Jordan Lee")
	assert.Contains(t, ack.Body, "I would like to discuss a project with you.")
}

// The operator alert failure surfaces; the acknowledgment must still be
// attempted.
func TestNotifier_OperatorFailureStillSendsAck(t *testing.T) {
	client := &mockMailClient{
		failFor: map[string]error{"admin@example.com": errors.New("smtp down")},
	}
	n := NewContactNotifier(client, "noreply@example.com", "admin@example.com")

	err := n.Notify(context.Background(), testMessage())
	assert.Error(t, err)
	require.Len(t, client.sent, 2, "both sends must be attempted")
	assert.Equal(t, []string{"jordan@example.com"}, client.sent[1].To)
}

// An acknowledgment failure is swallowed and never surfaces.
func TestNotifier_AckFailureIsSilent(t *testing.T) {
	client := &mockMailClient{
		failFor: map[string]error{"jordan@example.com": errors.New("mailbox full")},
	}
	n := NewContactNotifier(client, "noreply@example.com", "admin@example.com")

	err := n.Notify(context.Background(), testMessage())
	assert.NoError(t, err)
	assert.Len(t, client.sent, 2)
}

func TestNotifier_BothFail(t *testing.T) {
	client := &mockMailClient{
		failFor: map[string]error{
			"admin@example.com":  errors.New("smtp down"),
			"jordan@example.com": errors.New("smtp down"),
		},
	}
	n := NewContactNotifier(client, "noreply@example.com", "admin@example.com")

	err := n.Notify(context.Background(), testMessage())
	assert.Error(t, err)
	assert.Len(t, client.sent, 2)
}

func TestOperatorBody_OmitsEmptyOptionalFields(t *testing.T) {
	msg := testMessage()
	msg.Phone = ""
	msg.Company = ""
	msg.IPAddress = ""

	body := operatorBody(msg)
	assert.NotContains(t, body, "Phone:")
	assert.NotContains(t, body, "Company:")
	assert.NotContains(t, body, "IP address:")
}
