package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	CourseTypeDomestic = "Domestic"
	CourseTypeAbroad   = "Abroad"

	CourseModeOnline  = "Online"
	CourseModeOffline = "Offline"
)

// Course is an educare catalog offering.
type Course struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Fees      float64   `gorm:"not null" json:"fees"`
	Type      string    `gorm:"not null;size:20" json:"type"`
	Mode      string    `gorm:"not null;size:20" json:"mode"`
	StartDate time.Time `json:"start_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
