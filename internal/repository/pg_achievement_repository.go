package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// PgAchievementRepository is the PostgreSQL implementation of AchievementRepository.
type PgAchievementRepository struct {
	pool *pgxpool.Pool
}

func NewPgAchievementRepository(pool *pgxpool.Pool) *PgAchievementRepository {
	return &PgAchievementRepository{pool: pool}
}

var _ AchievementRepository = (*PgAchievementRepository)(nil)

const achievementSelect = `
	SELECT id, title, category, organization, COALESCE(description, ''),
	       date_achieved, COALESCE(certificate_url, ''), COALESCE(credential_id, ''),
	       COALESCE(icon, ''), is_featured, display_order, created_at, updated_at
	FROM achievements`

func (r *PgAchievementRepository) ListFeatured(ctx context.Context, limit int) ([]*model.Achievement, error) {
	query := achievementSelect + ` WHERE is_featured ORDER BY display_order, date_achieved DESC`
	if limit > 0 {
		return r.list(ctx, query+` LIMIT $1`, limit)
	}
	return r.list(ctx, query)
}

func (r *PgAchievementRepository) ListAll(ctx context.Context) ([]*model.Achievement, error) {
	return r.list(ctx, achievementSelect+` ORDER BY display_order, date_achieved DESC`)
}

func (r *PgAchievementRepository) list(ctx context.Context, query string, args ...any) ([]*model.Achievement, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var achievements []*model.Achievement
	for rows.Next() {
		var a model.Achievement
		if err := rows.Scan(&a.ID, &a.Title, &a.Category, &a.Organization, &a.Description,
			&a.DateAchieved, &a.CertificateURL, &a.CredentialID,
			&a.Icon, &a.IsFeatured, &a.Order, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		achievements = append(achievements, &a)
	}
	return achievements, rows.Err()
}
