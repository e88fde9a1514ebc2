package model

import "time"

// Employment types.
const (
	EmploymentFullTime   = "full_time"
	EmploymentPartTime   = "part_time"
	EmploymentContract   = "contract"
	EmploymentFreelance  = "freelance"
	EmploymentInternship = "internship"
	EmploymentVolunteer  = "volunteer"
)

// Experience is a work history entry.
type Experience struct {
	ID             string     `json:"id"`
	Company        string     `json:"company"`
	Position       string     `json:"position"`
	EmploymentType string     `json:"employment_type"`
	Location       string     `json:"location,omitempty"`
	Description    string     `json:"description"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"` // nil while the position is current
	CompanyURL     string     `json:"company_url,omitempty"`
	CompanyLogoURL string     `json:"company_logo_url,omitempty"`
	IsFeatured     bool       `json:"is_featured"`
	Order          int        `json:"order"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// IsCurrent reports whether this is the present position.
func (e *Experience) IsCurrent() bool {
	return e.EndDate == nil
}
