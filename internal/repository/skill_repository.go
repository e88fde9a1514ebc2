package repository

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// SkillRepository defines persistence for skills.
type SkillRepository interface {
	// ListFeatured returns featured skills ordered by (order, name).
	ListFeatured(ctx context.Context) ([]*model.Skill, error)
	// ListByCategory returns all skills in one category ordered by (order, name).
	ListByCategory(ctx context.Context, category string) ([]*model.Skill, error)
	// Upsert inserts the skill or, when a skill with the same name exists,
	// updates it in place. Used by the seeder.
	Upsert(ctx context.Context, skill *model.Skill) error
}
