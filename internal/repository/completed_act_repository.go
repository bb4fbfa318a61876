package repository

import (
	"github.com/google/uuid"
	"github.com/kindnet/kindness-api/internal/models"
	"gorm.io/gorm"
)

type CompletedActRepository struct {
	db *gorm.DB
}

func NewCompletedActRepository(db *gorm.DB) *CompletedActRepository {
	return &CompletedActRepository{db: db}
}

func (r *CompletedActRepository) CreateCompletedAct(completed *models.CompletedAct) error {
	return r.db.Create(completed).Error
}

// GetCompletedActsByUser returns completions in insertion order.
func (r *CompletedActRepository) GetCompletedActsByUser(userID uuid.UUID) ([]models.CompletedAct, error) {
	var completed []models.CompletedAct
	err := r.db.Where("user_id = ?", userID).Order("completed_at ASC").Find(&completed).Error
	return completed, err
}
