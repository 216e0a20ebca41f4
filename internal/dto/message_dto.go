package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMessageRequest struct {
	Subject string `json:"subject" validate:"required,min=1,max=255"`
	Content string `json:"content" validate:"required,min=10"`
}

type MessageResponse struct {
	ID            uuid.UUID    `json:"id"`
	Subject       string       `json:"subject"`
	Content       string       `json:"content"`
	AdminResponse *string      `json:"admin_response"`
	RespondedAt   *time.Time   `json:"responded_at"`
	IsRead        bool         `json:"is_read"`
	CreatedAt     time.Time    `json:"created_at"`
	User          *UserSummary `json:"user,omitempty"`
}
