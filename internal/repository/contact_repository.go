package repository

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// ContactRepository defines the persistence interface for contact messages.
// Message content is written once by Create; afterwards only the
// read/replied flags may change, through the two Mark operations.
type ContactRepository interface {
	// Create inserts the message and populates msg.ID and msg.CreatedAt
	// from the database.
	Create(ctx context.Context, msg *model.ContactMessage) error

	// MarkRead sets is_read on the given message. Marking an already-read
	// message is a no-op, not an error. Returns ErrNotFound for unknown ids.
	MarkRead(ctx context.Context, id string) error

	// MarkReplied sets is_replied on the given message, with the same
	// idempotence and error semantics as MarkRead.
	MarkReplied(ctx context.Context, id string) error

	// List returns messages matching opts, newest first.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)
}
