package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/kindnet/kindness-api/internal/apperr"
	"github.com/kindnet/kindness-api/internal/audit"
	"github.com/kindnet/kindness-api/internal/models"
	"github.com/kindnet/kindness-api/internal/policy"
	"github.com/kindnet/kindness-api/internal/repository"
	"github.com/kindnet/kindness-api/pkg/logger"
	"go.uber.org/zap"
)

type CompletedActService struct {
	completedRepo *repository.CompletedActRepository
	actRepo       *repository.ActRepository
	trail         *audit.Trail
}

func NewCompletedActService(
	completedRepo *repository.CompletedActRepository,
	actRepo *repository.ActRepository,
	trail *audit.Trail,
) *CompletedActService {
	return &CompletedActService{
		completedRepo: completedRepo,
		actRepo:       actRepo,
		trail:         trail,
	}
}

// CreateDirect records a completion without going through a bookmark. The
// same act may be completed any number of times.
func (s *CompletedActService) CreateDirect(actor policy.Actor, actID uuid.UUID) (*models.CompletedAct, error) {
	act, err := s.actRepo.GetActByID(actID)
	if err != nil {
		return nil, apperr.Internal("error creating completed act", err)
	}
	if act == nil {
		return nil, apperr.NotFound("kindness act doesn't exist")
	}

	completed := &models.CompletedAct{
		ID:          uuid.New(),
		UserID:      actor.ID,
		ActID:       act.ID,
		Title:       act.Title,
		Description: act.Description,
		Category:    act.Category,
		Difficulty:  act.Difficulty,
		CompletedAt: time.Now(),
	}

	if err := s.completedRepo.CreateCompletedAct(completed); err != nil {
		logger.Log.Error("Failed to create completed act",
			zap.String("act_id", actID.String()),
			zap.String("user_id", actor.ID.String()),
			zap.Error(err),
		)
		return nil, apperr.Internal("error creating completed act", err)
	}

	if s.trail != nil {
		_ = s.trail.Record(audit.Entry{
			Event:     audit.EventActCompleted,
			ActID:     act.ID.String(),
			ActorID:   actor.ID.String(),
			ActorRole: string(actor.Role),
			Detail:    "direct completion",
		})
	}

	logger.Log.Info("Completed act recorded",
		zap.String("completed_act_id", completed.ID.String()),
		zap.String("act_id", actID.String()),
		zap.String("user_id", actor.ID.String()),
	)

	return completed, nil
}

// ListForUser returns a user's completion history in insertion order.
func (s *CompletedActService) ListForUser(userID uuid.UUID) ([]models.CompletedAct, error) {
	completed, err := s.completedRepo.GetCompletedActsByUser(userID)
	if err != nil {
		return nil, apperr.Internal("error fetching completed acts", err)
	}
	return completed, nil
}
