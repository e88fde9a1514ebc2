package service

import (
	"context"
	"fmt"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

const (
	homeAchievementLimit = 3
	homeExperienceLimit  = 2
	homePostLimit        = 3
)

// portfolioServiceImpl is the production implementation of PortfolioService.
type portfolioServiceImpl struct {
	skills       repository.SkillRepository
	projects     repository.ProjectRepository
	achievements repository.AchievementRepository
	experiences  repository.ExperienceRepository
	posts        repository.PostRepository
}

// NewPortfolioService creates a PortfolioService over the content repositories.
func NewPortfolioService(
	skills repository.SkillRepository,
	projects repository.ProjectRepository,
	achievements repository.AchievementRepository,
	experiences repository.ExperienceRepository,
	posts repository.PostRepository,
) PortfolioService {
	return &portfolioServiceImpl{
		skills:       skills,
		projects:     projects,
		achievements: achievements,
		experiences:  experiences,
		posts:        posts,
	}
}

func (s *portfolioServiceImpl) Home(ctx context.Context) (*HomeData, error) {
	skills, err := s.skills.ListFeatured(ctx)
	if err != nil {
		return nil, fmt.Errorf("list featured skills: %w", err)
	}
	projects, err := s.projects.ListFeatured(ctx)
	if err != nil {
		return nil, fmt.Errorf("list featured projects: %w", err)
	}
	achievements, err := s.achievements.ListFeatured(ctx, homeAchievementLimit)
	if err != nil {
		return nil, fmt.Errorf("list featured achievements: %w", err)
	}
	experiences, err := s.experiences.ListFeatured(ctx, homeExperienceLimit)
	if err != nil {
		return nil, fmt.Errorf("list featured experiences: %w", err)
	}
	posts, err := s.posts.List(ctx, homePostLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent posts: %w", err)
	}

	return &HomeData{
		Skills:       skills,
		Projects:     projects,
		Achievements: achievements,
		Experiences:  experiences,
		RecentPosts:  posts,
	}, nil
}

func (s *portfolioServiceImpl) SkillsByCategory(ctx context.Context) ([]*model.SkillGroup, error) {
	var groups []*model.SkillGroup
	for _, cat := range model.SkillCategories {
		skills, err := s.skills.ListByCategory(ctx, cat.Key)
		if err != nil {
			return nil, fmt.Errorf("list skills for %s: %w", cat.Key, err)
		}
		if len(skills) == 0 {
			continue
		}
		groups = append(groups, &model.SkillGroup{Category: cat, Skills: skills})
	}
	return groups, nil
}

func (s *portfolioServiceImpl) Projects(ctx context.Context) (*ProjectsData, error) {
	all, err := s.projects.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	data := &ProjectsData{Projects: all}
	for _, p := range all {
		switch p.Status {
		case model.ProjectStatusCompleted:
			data.Completed = append(data.Completed, p)
		case model.ProjectStatusInProgress:
			data.InProgress = append(data.InProgress, p)
		}
	}
	return data, nil
}

func (s *portfolioServiceImpl) About(ctx context.Context) (*AboutData, error) {
	achievements, err := s.achievements.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	experiences, err := s.experiences.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	return &AboutData{Achievements: achievements, Experiences: experiences}, nil
}
