package models

import (
	"time"

	"github.com/google/uuid"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type ActStatus string

const (
	StatusPending  ActStatus = "pending"
	StatusApproved ActStatus = "approved"
	StatusRejected ActStatus = "rejected"
)

// KindnessAct is the canonical record of a suggested act. Status moves off
// "pending" only through an admin update; non-admin edits reset it.
type KindnessAct struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string     `gorm:"type:varchar(60);not null" json:"title"`
	Description string     `gorm:"type:varchar(255);not null" json:"description"`
	Category    string     `gorm:"type:varchar(255)" json:"category,omitempty"`
	Difficulty  Difficulty `gorm:"type:varchar(10);not null" json:"difficulty"`
	Status      ActStatus  `gorm:"type:varchar(10);not null;default:'pending';index" json:"status"`
	CreatedBy   uuid.UUID  `gorm:"type:uuid;not null;index" json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Creator User `gorm:"foreignKey:CreatedBy;constraint:OnDelete:CASCADE" json:"-"`
}
