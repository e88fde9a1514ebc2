package model

import (
	"strings"
	"time"
)

// Project statuses.
const (
	ProjectStatusCompleted  = "completed"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusPlanned    = "planned"
	ProjectStatusArchived   = "archived"
)

// Project is a portfolio project entry.
type Project struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Subtitle         string `json:"subtitle,omitempty"`
	Description      string `json:"description"`
	ShortDescription string `json:"short_description"`

	DemoURL      string `json:"demo_url,omitempty"`
	GithubURL    string `json:"github_url,omitempty"`
	CaseStudyURL string `json:"case_study_url,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	VideoURL     string `json:"video_url,omitempty"`

	Status string `json:"status"`
	// TechNames holds the names of linked skills, loaded via the
	// project_skills relation. TechTags is the comma-separated fallback
	// used when no skills are linked.
	TechNames []string `json:"tech_names,omitempty"`
	TechTags  string   `json:"tech_tags,omitempty"`

	KeyFeatures string `json:"key_features,omitempty"`
	Challenges  string `json:"challenges,omitempty"`
	Learnings   string `json:"learnings,omitempty"`

	IsFeatured bool `json:"is_featured"`
	IsPersonal bool `json:"is_personal"`
	Order      int  `json:"order"`

	StartDate      *time.Time `json:"start_date,omitempty"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TechList returns the technologies of the project, preferring the
// structured skill relation over the comma-separated fallback tags.
func (p *Project) TechList() []string {
	if len(p.TechNames) > 0 {
		return p.TechNames
	}
	if p.TechTags == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(p.TechTags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// FeatureList splits KeyFeatures into one entry per non-blank line.
func (p *Project) FeatureList() []string {
	if p.KeyFeatures == "" {
		return nil
	}
	var features []string
	for _, line := range strings.Split(p.KeyFeatures, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			features = append(features, line)
		}
	}
	return features
}
