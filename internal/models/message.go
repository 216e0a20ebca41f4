package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is a support/contact submission. A second admin reply overwrites
// the first; there is no threading.
type Message struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Subject       string     `gorm:"not null;size:255" json:"subject"`
	Content       string     `gorm:"type:text;not null" json:"content"`
	AdminResponse *string    `gorm:"type:text" json:"admin_response"`
	RespondedAt   *time.Time `json:"responded_at"`
	IsRead        bool       `gorm:"default:false" json:"is_read"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	User          User       `gorm:"foreignKey:UserID" json:"-"`
}
