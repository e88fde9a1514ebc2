package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

var _ ContactRepository = (*PgContactRepository)(nil)

// Create inserts a new contact_messages row. id, created_at and the
// false defaults for is_read/is_replied come from the database.
func (r *PgContactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_messages
		   (name, email, subject, message, phone, company, ip_address, user_agent)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, '')::inet, $8)
		 RETURNING id, created_at, is_read, is_replied`,
		msg.Name, msg.Email, msg.Subject, msg.Message,
		msg.Phone, msg.Company, msg.IPAddress, msg.UserAgent,
	).Scan(&msg.ID, &msg.CreatedAt, &msg.IsRead, &msg.IsReplied)
}

// MarkRead sets is_read=true. The unconditional UPDATE makes the
// operation naturally idempotent.
func (r *PgContactRepository) MarkRead(ctx context.Context, id string) error {
	return r.setFlag(ctx, "is_read", id)
}

// MarkReplied sets is_replied=true, idempotently.
func (r *PgContactRepository) MarkReplied(ctx context.Context, id string) error {
	return r.setFlag(ctx, "is_replied", id)
}

func (r *PgContactRepository) setFlag(ctx context.Context, column, id string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contact_messages SET `+column+` = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns contact messages filtered by the read/replied flags and
// paginated by limit/offset, newest first.
func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	var conditions []string
	var args []any

	if opts.Read != nil {
		args = append(args, *opts.Read)
		conditions = append(conditions, "is_read = $"+strconv.Itoa(len(args)))
	}
	if opts.Replied != nil {
		args = append(args, *opts.Replied)
		conditions = append(conditions, "is_replied = $"+strconv.Itoa(len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	args = append(args, opts.Limit, opts.Offset)
	query := `SELECT id, name, email, subject, message,
	                 COALESCE(phone, ''), COALESCE(company, ''),
	                 created_at, is_read, is_replied,
	                 COALESCE(ip_address::text, ''), user_agent
	          FROM contact_messages ` + where +
		` ORDER BY created_at DESC
		  LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message,
			&m.Phone, &m.Company, &m.CreatedAt, &m.IsRead, &m.IsReplied,
			&m.IPAddress, &m.UserAgent); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}
