package models

import (
	"time"

	"github.com/google/uuid"
)

// Employment classifications accepted on a profile.
const (
	EmploymentSalaried     = "salaried"
	EmploymentBusiness     = "business"
	EmploymentSelfEmployed = "self_employed"
)

// UserProfile is the 1:1 extension of a User filled in from the profile
// screen. Its presence is the precondition for finance applications.
type UserProfile struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName       string    `gorm:"size:255" json:"full_name"`
	Address        string    `gorm:"size:500" json:"address"`
	EmploymentType string    `gorm:"size:20" json:"employment_type"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	User           User      `gorm:"foreignKey:ID" json:"-"`
}
