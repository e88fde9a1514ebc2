package repository

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// AchievementRepository defines persistence for achievements.
type AchievementRepository interface {
	// ListFeatured returns up to limit featured achievements ordered by
	// (order, date_achieved desc). limit <= 0 means no limit.
	ListFeatured(ctx context.Context, limit int) ([]*model.Achievement, error)
	// ListAll returns every achievement ordered by (order, date_achieved desc).
	ListAll(ctx context.Context) ([]*model.Achievement, error)
}

// ExperienceRepository defines persistence for work experience entries.
type ExperienceRepository interface {
	// ListFeatured returns up to limit featured experiences ordered by
	// (order, start_date desc). limit <= 0 means no limit.
	ListFeatured(ctx context.Context, limit int) ([]*model.Experience, error)
	// ListAll returns every experience ordered by (order, start_date desc).
	ListAll(ctx context.Context) ([]*model.Experience, error)
}
