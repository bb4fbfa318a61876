package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/kindnet/kindness-api/internal/models"
	"gorm.io/gorm"
)

type SavedActRepository struct {
	db *gorm.DB
}

func NewSavedActRepository(db *gorm.DB) *SavedActRepository {
	return &SavedActRepository{db: db}
}

func (r *SavedActRepository) CreateSavedAct(saved *models.SavedAct) error {
	return r.db.Create(saved).Error
}

func (r *SavedActRepository) GetSavedActByID(id uuid.UUID) (*models.SavedAct, error) {
	var saved models.SavedAct
	err := r.db.Where("id = ?", id).First(&saved).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &saved, nil
}

func (r *SavedActRepository) GetSavedActByUserAndAct(userID, actID uuid.UUID) (*models.SavedAct, error) {
	var saved models.SavedAct
	err := r.db.Where("user_id = ? AND act_id = ?", userID, actID).First(&saved).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &saved, nil
}

func (r *SavedActRepository) GetSavedActsByUser(userID uuid.UUID) ([]models.SavedAct, error) {
	var saved []models.SavedAct
	err := r.db.Where("user_id = ?", userID).Order("saved_at DESC").Find(&saved).Error
	return saved, err
}

func (r *SavedActRepository) DeleteSavedAct(id uuid.UUID) error {
	return r.db.Delete(&models.SavedAct{}, "id = ?", id).Error
}
