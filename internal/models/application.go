package models

import (
	"time"

	"github.com/google/uuid"
)

// ServiceType discriminates which catalog table an application's service_id
// resolves against.
type ServiceType string

const (
	ServiceTypeEducare  ServiceType = "educare"
	ServiceTypeEduGuide ServiceType = "eduguide"
	ServiceTypeFinance  ServiceType = "finance"
)

// Application statuses. Initial status is pending; approved and rejected are
// set by admin action only.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Application records a user's request to enroll in an offering. ServiceID
// is a soft reference into the catalog table named by ServiceType — no FK
// constraint, so the offering may be deleted out from under historical rows.
type Application struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	ServiceType   ServiceType `gorm:"not null;size:20;index" json:"service_type"`
	ServiceID     uuid.UUID   `gorm:"type:uuid;not null" json:"service_id"`
	Status        string      `gorm:"not null;default:'pending';size:20;index" json:"status"`
	AdminResponse *string     `gorm:"type:text" json:"admin_response"`
	RespondedAt   *time.Time  `json:"responded_at"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
	User          User        `gorm:"foreignKey:UserID" json:"-"`
}

// ValidServiceType reports whether t is one of the three known catalog tags.
func ValidServiceType(t ServiceType) bool {
	switch t {
	case ServiceTypeEducare, ServiceTypeEduGuide, ServiceTypeFinance:
		return true
	}
	return false
}

// ValidStatus reports whether s is a member of the status enum.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
