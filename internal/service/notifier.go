package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/pkg/mail"
)

// ContactNotifier sends the two emails for a stored contact message.
type ContactNotifier interface {
	// Notify attempts both the operator alert and the sender
	// acknowledgment. The returned error reflects the operator alert
	// only; an acknowledgment failure is swallowed.
	Notify(ctx context.Context, msg *model.ContactMessage) error
}

// contactNotifierImpl sends mail through a mail.Client using the two
// configured addresses.
type contactNotifierImpl struct {
	mail     mail.Client
	from     string
	operator string
}

// NewContactNotifier creates a ContactNotifier that sends from the given
// address and alerts the given operator address.
func NewContactNotifier(client mail.Client, from, operator string) ContactNotifier {
	return &contactNotifierImpl{mail: client, from: from, operator: operator}
}

// Notify always attempts both sends; a failure of one never prevents
// the other.
func (n *contactNotifierImpl) Notify(ctx context.Context, msg *model.ContactMessage) error {
	alertErr := n.mail.Send(ctx, mail.Message{
		From:    n.from,
		To:      []string{n.operator},
		Subject: fmt.Sprintf("Portfolio Contact: %s", msg.Subject),
		Body:    operatorBody(msg),
	})
	if alertErr != nil {
		slog.Error("operator alert send failed", "error", alertErr, "message_id", msg.ID)
	}

	if err := n.mail.Send(ctx, mail.Message{
		From:    n.from,
		To:      []string{msg.Email},
		Subject: "Thank you for reaching out!",
		Body:    acknowledgmentBody(msg),
	}); err != nil {
		// The acknowledgment is best-effort; the submitter never sees
		// this failure.
		slog.Warn("acknowledgment send failed", "error", err, "message_id", msg.ID)
	}

	return alertErr
}

func operatorBody(msg *model.ContactMessage) string {
	var b strings.Builder
	b.WriteString("New contact form submission\n\n")
	fmt.Fprintf(&b, "Name: %s\n", msg.Name)
	fmt.Fprintf(&b, "Email: %s\n", msg.Email)
	fmt.Fprintf(&b, "Subject: %s\n", msg.Subject)
	if msg.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", msg.Phone)
	}
	if msg.Company != "" {
		fmt.Fprintf(&b, "Company: %s\n", msg.Company)
	}
	fmt.Fprintf(&b, "\nMessage:\n%s\n", msg.Message)
	fmt.Fprintf(&b, "\nReceived: %s\n", msg.CreatedAt.Format(time.RFC1123))
	if msg.IPAddress != "" {
		fmt.Fprintf(&b, "IP address: %s\n", msg.IPAddress)
	}
	return b.String()
}

func acknowledgmentBody(msg *model.ContactMessage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", msg.Name)
	b.WriteString("Thank you for your message! I have received it and will get back to you as soon as possible.\n\n")
	b.WriteString("Your message:\n")
	fmt.Fprintf(&b, "%s\n\n", msg.Message)
	b.WriteString("Best regards\n")
	return b.String()
}
