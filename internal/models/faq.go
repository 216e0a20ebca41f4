package models

import (
	"time"

	"github.com/google/uuid"
)

// FAQ sections, one per site area.
const (
	FAQSectionHome     = "home"
	FAQSectionEducare  = "educare"
	FAQSectionEduGuide = "eduguide"
	FAQSectionFinance  = "finance"
	FAQSectionSupport  = "support"
)

// FAQ is admin-managed marketing content. Display order ties are broken by
// insertion order.
type FAQ struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Question     string    `gorm:"not null;type:text" json:"question"`
	Answer       string    `gorm:"not null;type:text" json:"answer"`
	Section      string    `gorm:"not null;size:20;index" json:"section"`
	DisplayOrder int       `gorm:"not null;default:0" json:"order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidFAQSection reports whether s is a known section tag.
func ValidFAQSection(s string) bool {
	switch s {
	case FAQSectionHome, FAQSectionEducare, FAQSectionEduGuide, FAQSectionFinance, FAQSectionSupport:
		return true
	}
	return false
}
