package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/prashilgroup/prashil-backend/internal/models"
)

type CreateApplicationRequest struct {
	ServiceType models.ServiceType `json:"service_type" validate:"required,oneof=educare eduguide finance"`
	ServiceID   uuid.UUID          `json:"service_id" validate:"required"`
}

type RespondRequest struct {
	Response string `json:"response" validate:"required,min=1"`
}

type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

// ServiceSummary is the resolved offering attached to an application. It is
// null in responses when the offering was deleted from the catalog.
type ServiceSummary struct {
	Type    models.ServiceType `json:"type"`
	ID      uuid.UUID          `json:"id"`
	Name    string             `json:"name"`
	Details string             `json:"details"`
}

type ApplicationResponse struct {
	ID            uuid.UUID          `json:"id"`
	ServiceType   models.ServiceType `json:"service_type"`
	ServiceID     uuid.UUID          `json:"service_id"`
	Status        string             `json:"status"`
	AdminResponse *string            `json:"admin_response"`
	RespondedAt   *time.Time         `json:"responded_at"`
	CreatedAt     time.Time          `json:"created_at"`
	Service       *ServiceSummary    `json:"service"`
	// Owner identity, populated on admin listings only.
	User *UserSummary `json:"user,omitempty"`
}

type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
}
