// Package mail provides a minimal SMTP client for outbound notification
// email. Uses net/smtp directly (no SDK) to minimize external dependencies.
package mail

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

// Message is a single outbound email.
type Message struct {
	From    string
	To      []string
	Subject string
	Body    string
}

// Client sends email messages.
type Client interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPClient delivers mail through a single SMTP relay.
type SMTPClient struct {
	addr string // host:port
	auth smtp.Auth
	// sendMail is swappable for tests; defaults to smtp.SendMail.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPClient creates an SMTPClient. username may be empty, in which
// case the relay is used without authentication.
func NewSMTPClient(host string, port int, username, password string) *SMTPClient {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPClient{
		addr:     fmt.Sprintf("%s:%d", host, port),
		auth:     auth,
		sendMail: smtp.SendMail,
	}
}

var _ Client = (*SMTPClient)(nil)

// Send delivers the message synchronously. The context is accepted for
// interface symmetry; net/smtp does not support cancellation mid-send,
// so only an already-cancelled context is honored.
func (c *SMTPClient) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if msg.From == "" {
		return errors.New("mail: empty from address")
	}
	if len(msg.To) == 0 {
		return errors.New("mail: no recipients")
	}
	return c.sendMail(c.addr, c.auth, msg.From, msg.To, encode(msg))
}

// encode renders the message as a simple RFC 822 text email.
func encode(msg Message) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", msg.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(msg.To, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", sanitizeHeader(msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	return []byte(b.String())
}

// sanitizeHeader strips CR/LF so user-supplied text cannot inject headers.
func sanitizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
