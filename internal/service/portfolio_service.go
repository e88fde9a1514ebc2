package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// HomeData is the featured content shown on the landing page.
type HomeData struct {
	Skills       []*model.Skill       `json:"skills"`
	Projects     []*model.Project     `json:"projects"`
	Achievements []*model.Achievement `json:"achievements"`
	Experiences  []*model.Experience  `json:"experiences"`
	RecentPosts  []*model.BlogPost    `json:"recent_posts"`
}

// ProjectsData groups projects for the projects detail page.
type ProjectsData struct {
	Projects   []*model.Project `json:"projects"`
	Completed  []*model.Project `json:"completed"`
	InProgress []*model.Project `json:"in_progress"`
}

// AboutData carries the full achievement and experience history.
type AboutData struct {
	Achievements []*model.Achievement `json:"achievements"`
	Experiences  []*model.Experience  `json:"experiences"`
}

// PortfolioService assembles page content from the content repositories.
type PortfolioService interface {
	// Home returns the featured selection: all featured skills and
	// projects, the top 3 achievements, the 2 most recent experiences
	// and the 3 newest blog posts.
	Home(ctx context.Context) (*HomeData, error)

	// SkillsByCategory returns all skills grouped by category in the
	// fixed category display order, omitting empty categories.
	SkillsByCategory(ctx context.Context) ([]*model.SkillGroup, error)

	// Projects returns every project plus the completed/in-progress groupings.
	Projects(ctx context.Context) (*ProjectsData, error)

	// About returns all achievements and experiences.
	About(ctx context.Context) (*AboutData, error)
}
