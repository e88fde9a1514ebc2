package repository

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// ProjectRepository defines persistence for portfolio projects.
type ProjectRepository interface {
	// ListFeatured returns featured projects ordered by (order, created_at desc).
	ListFeatured(ctx context.Context) ([]*model.Project, error)
	// ListAll returns every project ordered by (order, created_at desc).
	ListAll(ctx context.Context) ([]*model.Project, error)
	// ListByStatus returns projects with the given status.
	ListByStatus(ctx context.Context, status string) ([]*model.Project, error)
	// Upsert inserts or updates a project keyed on title. Used by the seeder.
	Upsert(ctx context.Context, project *model.Project) error
}
