package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// BlogService exposes read access to blog posts.
type BlogService interface {
	// List returns every post, newest first.
	List(ctx context.Context) ([]*model.BlogPost, error)
	// Get returns a single post, or repository.ErrNotFound.
	Get(ctx context.Context, id string) (*model.BlogPost, error)
}

type blogServiceImpl struct {
	repo repository.PostRepository
}

// NewBlogService creates a BlogService backed by the given repository.
func NewBlogService(repo repository.PostRepository) BlogService {
	return &blogServiceImpl{repo: repo}
}

func (s *blogServiceImpl) List(ctx context.Context) ([]*model.BlogPost, error) {
	return s.repo.List(ctx, 0)
}

func (s *blogServiceImpl) Get(ctx context.Context, id string) (*model.BlogPost, error) {
	return s.repo.GetByID(ctx, id)
}
