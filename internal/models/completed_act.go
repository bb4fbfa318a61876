package models

import (
	"time"

	"github.com/google/uuid"
)

// CompletedAct is a per-user completion record. Not unique per (user, act):
// the same act may be completed multiple times. Same snapshot shape as
// SavedAct plus the completion timestamp; never updated after creation.
type CompletedAct struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ActID  uuid.UUID `gorm:"type:uuid;not null" json:"act_id"`

	Title       string     `gorm:"type:varchar(60);not null" json:"title"`
	Description string     `gorm:"type:varchar(255);not null" json:"description"`
	Category    string     `gorm:"type:varchar(255)" json:"category,omitempty"`
	Difficulty  Difficulty `gorm:"type:varchar(10);not null" json:"difficulty"`

	CompletedAt time.Time `json:"completed_at"`
}
