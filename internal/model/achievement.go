package model

import "time"

// Achievement categories.
const (
	AchievementCategoryCertification = "certification"
	AchievementCategoryAward         = "award"
	AchievementCategoryRecognition   = "recognition"
	AchievementCategoryPublication   = "publication"
	AchievementCategorySpeaking      = "speaking"
	AchievementCategoryContribution  = "contribution"
	AchievementCategoryEducation     = "education"
	AchievementCategoryOther         = "other"
)

// Achievement is a certification, award or similar credential.
type Achievement struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Category       string    `json:"category"`
	Organization   string    `json:"organization"`
	Description    string    `json:"description,omitempty"`
	DateAchieved   time.Time `json:"date_achieved"`
	CertificateURL string    `json:"certificate_url,omitempty"`
	CredentialID   string    `json:"credential_id,omitempty"`
	Icon           string    `json:"icon,omitempty"`
	IsFeatured     bool      `json:"is_featured"`
	Order          int       `json:"order"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
