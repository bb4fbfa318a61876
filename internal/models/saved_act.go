package models

import (
	"time"

	"github.com/google/uuid"
)

// SavedAct is a per-user bookmark carrying a point-in-time snapshot of the
// act's fields. The ActID back-reference is informational only; the snapshot
// is authoritative for display and must survive deletion of the source act,
// so there is no foreign key to kindness_acts.
type SavedAct struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_saved_user_act" json:"user_id"`
	ActID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_user_act" json:"act_id"`

	// Snapshot fields, copied from the act at save time.
	Title       string     `gorm:"type:varchar(60);not null" json:"title"`
	Description string     `gorm:"type:varchar(255);not null" json:"description"`
	Category    string     `gorm:"type:varchar(255)" json:"category,omitempty"`
	Difficulty  Difficulty `gorm:"type:varchar(10);not null" json:"difficulty"`

	SavedAt time.Time `json:"saved_at"`
}
