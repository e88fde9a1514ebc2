package model

import "time"

// Skill categories. The display order of categories on the skills page
// follows SkillCategories.
const (
	SkillCategoryProgramming = "programming"
	SkillCategoryFramework   = "framework"
	SkillCategoryDatabase    = "database"
	SkillCategoryDevOps      = "devops"
	SkillCategoryTools       = "tools"
	SkillCategoryAIML        = "ai_ml"
	SkillCategoryOther       = "other"
)

// SkillCategory pairs a category key with its display label.
type SkillCategory struct {
	Key   string
	Label string
}

// SkillCategories lists every category in display order.
var SkillCategories = []SkillCategory{
	{SkillCategoryProgramming, "Programming Languages"},
	{SkillCategoryFramework, "Frameworks & Libraries"},
	{SkillCategoryDatabase, "Databases"},
	{SkillCategoryDevOps, "DevOps & Cloud"},
	{SkillCategoryTools, "Tools & Technologies"},
	{SkillCategoryAIML, "AI & Machine Learning"},
	{SkillCategoryOther, "Other"},
}

// Skill is a single technology or competency shown on the portfolio.
type Skill struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Proficiency int       `json:"proficiency"` // 0-100
	Description string    `json:"description"`
	Icon        string    `json:"icon,omitempty"`
	IsFeatured  bool      `json:"is_featured"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SkillGroup is a non-empty category with its skills, used by the
// skills detail page.
type SkillGroup struct {
	Category SkillCategory `json:"category"`
	Skills   []*Skill      `json:"skills"`
}
