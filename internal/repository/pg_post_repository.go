package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// PgPostRepository is the PostgreSQL implementation of PostRepository.
type PgPostRepository struct {
	pool *pgxpool.Pool
}

func NewPgPostRepository(pool *pgxpool.Pool) *PgPostRepository {
	return &PgPostRepository{pool: pool}
}

var _ PostRepository = (*PgPostRepository)(nil)

func (r *PgPostRepository) List(ctx context.Context, limit int) ([]*model.BlogPost, error) {
	query := `SELECT id, title, content, author, created_on, updated_on
	          FROM blog_posts ORDER BY created_on DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*model.BlogPost
	for rows.Next() {
		var p model.BlogPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Author, &p.CreatedOn, &p.UpdatedOn); err != nil {
			return nil, err
		}
		posts = append(posts, &p)
	}
	return posts, rows.Err()
}

func (r *PgPostRepository) GetByID(ctx context.Context, id string) (*model.BlogPost, error) {
	var p model.BlogPost
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, content, author, created_on, updated_on
		 FROM blog_posts WHERE id = $1`, id,
	).Scan(&p.ID, &p.Title, &p.Content, &p.Author, &p.CreatedOn, &p.UpdatedOn)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
