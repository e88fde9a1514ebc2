package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// SubmitResult reports how a stored submission was notified.
type SubmitResult struct {
	Message *model.ContactMessage
	// OperatorNotified is false when the message was persisted but the
	// operator alert email could not be sent.
	OperatorNotified bool
}

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit persists an already-validated message and attempts both
	// notification emails. A persistence failure returns an error; a
	// failed operator alert is reported through the result instead.
	Submit(ctx context.Context, msg *model.ContactMessage) (SubmitResult, error)

	// List returns contact messages according to the given options.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)

	// MarkRead flags a message as read. Idempotent.
	MarkRead(ctx context.Context, id string) error

	// MarkReplied flags a message as replied. Idempotent.
	MarkReplied(ctx context.Context, id string) error
}
