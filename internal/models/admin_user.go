package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is the flat allow-list granting admin capability. The primary
// key is the user's id; there are no roles beyond membership.
type AdminUser struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `gorm:"foreignKey:ID" json:"-"`
}
