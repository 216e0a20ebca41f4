package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/prashilgroup/prashil-backend/internal/models"
)

type UpdateProfileRequest struct {
	Username       string `json:"username" validate:"required,min=2,max=100"`
	Email          string `json:"email" validate:"required,email"`
	FullName       string `json:"full_name" validate:"required,max=255"`
	Address        string `json:"address" validate:"required,max=500"`
	EmploymentType string `json:"employment_type" validate:"required,oneof=salaried business self_employed"`
}

type ProfileResponse struct {
	ID       uuid.UUID           `json:"id"`
	Email    string              `json:"email"`
	Username string              `json:"username"`
	Profile  *models.UserProfile `json:"profile"`
}

// DirectoryEntry is a row in the admin user directory.
type DirectoryEntry struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	Username          string    `json:"username"`
	CreatedAt         time.Time `json:"created_at"`
	ApplicationsCount int64     `json:"applications_count"`
	MessagesCount     int64     `json:"messages_count"`
}

type UserStats struct {
	TotalApplications      int64 `json:"total_applications"`
	IncompleteApplications int64 `json:"incomplete_applications"`
	UnreadMessages         int64 `json:"unread_messages"`
	Enrollments            struct {
		Educare  int64 `json:"educare"`
		EduGuide int64 `json:"eduguide"`
		Finance  int64 `json:"finance"`
	} `json:"enrollments"`
}

type AdminStats struct {
	TotalUsers          int64 `json:"total_users"`
	RecentSignups       int64 `json:"recent_signups"`
	TotalMessages       int64 `json:"total_messages"`
	UnrespondedMessages int64 `json:"unresponded_messages"`
	RecentMessages      int64 `json:"recent_messages"`
	TotalApplications   int64 `json:"total_applications"`
	PendingApplications int64 `json:"pending_applications"`
}
