package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primaryKey"             json:"id"`
	Email     string    `gorm:"not null"                                json:"email"`
	Role      Role      `gorm:"type:varchar(16);not null;default:user" json:"role"`
	IsActive  bool      `gorm:"not null"                                json:"is_active"`
	CreatedAt time.Time `gorm:"not null;index"                          json:"created_at"`
}
