package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// PgProjectRepository is the PostgreSQL implementation of ProjectRepository.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

// projectSelect aggregates linked skill names into tech_names so a single
// query loads each project with its technology relation.
const projectSelect = `
	SELECT p.id, p.title, COALESCE(p.subtitle, ''), p.description, p.short_description,
	       COALESCE(p.demo_url, ''), COALESCE(p.github_url, ''), COALESCE(p.case_study_url, ''),
	       COALESCE(p.image_url, ''), COALESCE(p.video_url, ''),
	       p.status, COALESCE(p.tech_tags, ''),
	       COALESCE(p.key_features, ''), COALESCE(p.challenges, ''), COALESCE(p.learnings, ''),
	       p.is_featured, p.is_personal, p.display_order,
	       p.start_date, p.completion_date, p.created_at, p.updated_at,
	       COALESCE(array_agg(s.name ORDER BY s.display_order, s.name)
	                FILTER (WHERE s.id IS NOT NULL), '{}')
	FROM projects p
	LEFT JOIN project_skills ps ON ps.project_id = p.id
	LEFT JOIN skills s ON s.id = ps.skill_id`

const projectGroupOrder = ` GROUP BY p.id ORDER BY p.display_order, p.created_at DESC`

func (r *PgProjectRepository) ListFeatured(ctx context.Context) ([]*model.Project, error) {
	return r.list(ctx, projectSelect+` WHERE p.is_featured`+projectGroupOrder)
}

func (r *PgProjectRepository) ListAll(ctx context.Context) ([]*model.Project, error) {
	return r.list(ctx, projectSelect+projectGroupOrder)
}

func (r *PgProjectRepository) ListByStatus(ctx context.Context, status string) ([]*model.Project, error) {
	return r.list(ctx, projectSelect+` WHERE p.status = $1`+projectGroupOrder, status)
}

// Upsert keys on the project title, matching the seeder's get_or_create
// semantics. The skill relation is not touched here; the seeder links
// technologies separately.
func (r *PgProjectRepository) Upsert(ctx context.Context, p *model.Project) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO projects
		   (title, subtitle, description, short_description,
		    demo_url, github_url, case_study_url, image_url, video_url,
		    status, tech_tags, key_features, challenges, learnings,
		    is_featured, is_personal, display_order, start_date, completion_date)
		 VALUES ($1, NULLIF($2, ''), $3, $4,
		         NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''),
		         $10, NULLIF($11, ''), NULLIF($12, ''), NULLIF($13, ''), NULLIF($14, ''),
		         $15, $16, $17, $18, $19)
		 ON CONFLICT (title) DO UPDATE SET
		   subtitle = EXCLUDED.subtitle,
		   description = EXCLUDED.description,
		   short_description = EXCLUDED.short_description,
		   demo_url = EXCLUDED.demo_url,
		   github_url = EXCLUDED.github_url,
		   case_study_url = EXCLUDED.case_study_url,
		   image_url = EXCLUDED.image_url,
		   video_url = EXCLUDED.video_url,
		   status = EXCLUDED.status,
		   tech_tags = EXCLUDED.tech_tags,
		   key_features = EXCLUDED.key_features,
		   challenges = EXCLUDED.challenges,
		   learnings = EXCLUDED.learnings,
		   is_featured = EXCLUDED.is_featured,
		   is_personal = EXCLUDED.is_personal,
		   display_order = EXCLUDED.display_order,
		   start_date = EXCLUDED.start_date,
		   completion_date = EXCLUDED.completion_date,
		   updated_at = now()
		 RETURNING id, created_at, updated_at`,
		p.Title, p.Subtitle, p.Description, p.ShortDescription,
		p.DemoURL, p.GithubURL, p.CaseStudyURL, p.ImageURL, p.VideoURL,
		p.Status, p.TechTags, p.KeyFeatures, p.Challenges, p.Learnings,
		p.IsFeatured, p.IsPersonal, p.Order, p.StartDate, p.CompletionDate,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// LinkSkill attaches a skill to a project by name, ignoring duplicates.
func (r *PgProjectRepository) LinkSkill(ctx context.Context, projectID, skillName string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO project_skills (project_id, skill_id)
		 SELECT $1, id FROM skills WHERE name = $2
		 ON CONFLICT DO NOTHING`,
		projectID, skillName)
	return err
}

func (r *PgProjectRepository) list(ctx context.Context, query string, args ...any) ([]*model.Project, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Subtitle, &p.Description, &p.ShortDescription,
			&p.DemoURL, &p.GithubURL, &p.CaseStudyURL, &p.ImageURL, &p.VideoURL,
			&p.Status, &p.TechTags, &p.KeyFeatures, &p.Challenges, &p.Learnings,
			&p.IsFeatured, &p.IsPersonal, &p.Order,
			&p.StartDate, &p.CompletionDate, &p.CreatedAt, &p.UpdatedAt,
			&p.TechNames); err != nil {
			return nil, err
		}
		if len(p.TechNames) == 0 {
			p.TechNames = nil
		}
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}
