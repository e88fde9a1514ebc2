package repository

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// PostRepository defines persistence for blog posts.
type PostRepository interface {
	// List returns up to limit posts, newest first. limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]*model.BlogPost, error)
	// GetByID returns a single post, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.BlogPost, error)
}
