package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/kindnet/kindness-api/internal/models"
	"gorm.io/gorm"
)

type ActRepository struct {
	db *gorm.DB
}

func NewActRepository(db *gorm.DB) *ActRepository {
	return &ActRepository{db: db}
}

func (r *ActRepository) CreateAct(act *models.KindnessAct) error {
	return r.db.Create(act).Error
}

func (r *ActRepository) GetActByID(id uuid.UUID) (*models.KindnessAct, error) {
	var act models.KindnessAct
	err := r.db.Where("id = ?", id).First(&act).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &act, nil
}

func (r *ActRepository) GetAllActs() ([]models.KindnessAct, error) {
	var acts []models.KindnessAct
	err := r.db.Order("created_at DESC").Find(&acts).Error
	return acts, err
}

func (r *ActRepository) GetActsByCreator(creatorID uuid.UUID) ([]models.KindnessAct, error) {
	var acts []models.KindnessAct
	err := r.db.Where("created_by = ?", creatorID).Order("created_at DESC").Find(&acts).Error
	return acts, err
}

func (r *ActRepository) GetApprovedActs() ([]models.KindnessAct, error) {
	var acts []models.KindnessAct
	err := r.db.Where("status = ?", models.StatusApproved).Order("created_at DESC").Find(&acts).Error
	return acts, err
}

// UpdateAct applies a partial field set. Permission checks happen in the
// service layer before this is called.
func (r *ActRepository) UpdateAct(id uuid.UUID, fields map[string]interface{}) (*models.KindnessAct, error) {
	if err := r.db.Model(&models.KindnessAct{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.GetActByID(id)
}

// DeleteAct is a hard delete; there is no tombstone or retention.
func (r *ActRepository) DeleteAct(id uuid.UUID) error {
	return r.db.Delete(&models.KindnessAct{}, "id = ?", id).Error
}
