package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	CreatedAt time.Time `gorm:"default:now()" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate assigns a uuid when the database default is not in play
// (e.g. bulk creates through gorm without RETURNING).
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// Caller identifies the authenticated requester. Handlers build it from the
// verified token and pass it explicitly into services; services never reach
// into ambient session state.
type Caller struct {
	ID   string
	Role UserRole
}
