package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// PgSkillRepository is the PostgreSQL implementation of SkillRepository.
type PgSkillRepository struct {
	pool *pgxpool.Pool
}

func NewPgSkillRepository(pool *pgxpool.Pool) *PgSkillRepository {
	return &PgSkillRepository{pool: pool}
}

var _ SkillRepository = (*PgSkillRepository)(nil)

const skillColumns = `id, name, category, proficiency, description,
	COALESCE(icon, ''), is_featured, display_order, created_at, updated_at`

func (r *PgSkillRepository) ListFeatured(ctx context.Context) ([]*model.Skill, error) {
	return r.list(ctx,
		`SELECT `+skillColumns+` FROM skills
		 WHERE is_featured ORDER BY display_order, name`)
}

func (r *PgSkillRepository) ListByCategory(ctx context.Context, category string) ([]*model.Skill, error) {
	return r.list(ctx,
		`SELECT `+skillColumns+` FROM skills
		 WHERE category = $1 ORDER BY display_order, name`, category)
}

// Upsert keys on the skill name, matching the seeder's get_or_create
// semantics.
func (r *PgSkillRepository) Upsert(ctx context.Context, skill *model.Skill) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO skills (name, category, proficiency, description, icon, is_featured, display_order)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)
		 ON CONFLICT (name) DO UPDATE SET
		   category = EXCLUDED.category,
		   proficiency = EXCLUDED.proficiency,
		   description = EXCLUDED.description,
		   icon = EXCLUDED.icon,
		   is_featured = EXCLUDED.is_featured,
		   display_order = EXCLUDED.display_order,
		   updated_at = now()
		 RETURNING id, created_at, updated_at`,
		skill.Name, skill.Category, skill.Proficiency, skill.Description,
		skill.Icon, skill.IsFeatured, skill.Order,
	).Scan(&skill.ID, &skill.CreatedAt, &skill.UpdatedAt)
}

func (r *PgSkillRepository) list(ctx context.Context, query string, args ...any) ([]*model.Skill, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []*model.Skill
	for rows.Next() {
		var s model.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Proficiency, &s.Description,
			&s.Icon, &s.IsFeatured, &s.Order, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, &s)
	}
	return skills, rows.Err()
}
