package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// PgExperienceRepository is the PostgreSQL implementation of ExperienceRepository.
type PgExperienceRepository struct {
	pool *pgxpool.Pool
}

func NewPgExperienceRepository(pool *pgxpool.Pool) *PgExperienceRepository {
	return &PgExperienceRepository{pool: pool}
}

var _ ExperienceRepository = (*PgExperienceRepository)(nil)

const experienceSelect = `
	SELECT id, company, position, employment_type, COALESCE(location, ''),
	       description, start_date, end_date,
	       COALESCE(company_url, ''), COALESCE(company_logo_url, ''),
	       is_featured, display_order, created_at, updated_at
	FROM experiences`

func (r *PgExperienceRepository) ListFeatured(ctx context.Context, limit int) ([]*model.Experience, error) {
	query := experienceSelect + ` WHERE is_featured ORDER BY display_order, start_date DESC`
	if limit > 0 {
		return r.list(ctx, query+` LIMIT $1`, limit)
	}
	return r.list(ctx, query)
}

func (r *PgExperienceRepository) ListAll(ctx context.Context) ([]*model.Experience, error) {
	return r.list(ctx, experienceSelect+` ORDER BY display_order, start_date DESC`)
}

func (r *PgExperienceRepository) list(ctx context.Context, query string, args ...any) ([]*model.Experience, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var experiences []*model.Experience
	for rows.Next() {
		var e model.Experience
		if err := rows.Scan(&e.ID, &e.Company, &e.Position, &e.EmploymentType, &e.Location,
			&e.Description, &e.StartDate, &e.EndDate,
			&e.CompanyURL, &e.CompanyLogoURL,
			&e.IsFeatured, &e.Order, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		experiences = append(experiences, &e)
	}
	return experiences, rows.Err()
}
