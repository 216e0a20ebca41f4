package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	GuidanceCareerCounselling = "career_counselling"
	GuidanceCollegeAdmission  = "college_admission"
)

// GuidanceService is an eduguide catalog offering.
type GuidanceService struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null;size:255" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"not null;size:50;index" json:"category"`
	Location    *string   `gorm:"size:255" json:"location,omitempty"`
	Fee         float64   `gorm:"not null" json:"fee"`
	MinStudents *int      `json:"min_students,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
