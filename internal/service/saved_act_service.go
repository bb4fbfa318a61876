package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kindnet/kindness-api/internal/apperr"
	"github.com/kindnet/kindness-api/internal/audit"
	"github.com/kindnet/kindness-api/internal/models"
	"github.com/kindnet/kindness-api/internal/policy"
	"github.com/kindnet/kindness-api/internal/repository"
	"github.com/kindnet/kindness-api/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SavedActService owns the per-user bookmark ledger. Admins do not
// participate in the save/complete workflow at all.
type SavedActService struct {
	savedRepo     *repository.SavedActRepository
	actRepo       *repository.ActRepository
	completedRepo *repository.CompletedActRepository
	trail         *audit.Trail
}

func NewSavedActService(
	savedRepo *repository.SavedActRepository,
	actRepo *repository.ActRepository,
	completedRepo *repository.CompletedActRepository,
	trail *audit.Trail,
) *SavedActService {
	return &SavedActService{
		savedRepo:     savedRepo,
		actRepo:       actRepo,
		completedRepo: completedRepo,
		trail:         trail,
	}
}

// Save bookmarks an act for the actor, copying the act's current fields into
// the new entry. One bookmark per (user, act).
func (s *SavedActService) Save(actor policy.Actor, actID uuid.UUID) (*models.SavedAct, error) {
	if actor.IsAdmin() {
		return nil, apperr.Forbidden("admins cannot save acts")
	}

	act, err := s.actRepo.GetActByID(actID)
	if err != nil {
		return nil, apperr.Internal("error saving act", err)
	}
	if act == nil {
		return nil, apperr.NotFound("kindness act doesn't exist")
	}

	existing, err := s.savedRepo.GetSavedActByUserAndAct(actor.ID, actID)
	if err != nil {
		return nil, apperr.Internal("error saving act", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("act saved already")
	}

	saved := &models.SavedAct{
		ID:          uuid.New(),
		UserID:      actor.ID,
		ActID:       act.ID,
		Title:       act.Title,
		Description: act.Description,
		Category:    act.Category,
		Difficulty:  act.Difficulty,
		SavedAt:     time.Now(),
	}

	if err := s.savedRepo.CreateSavedAct(saved); err != nil {
		// Concurrent saves of the same act race on the composite unique
		// index; the storage layer rejects the loser.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("act saved already")
		}
		logger.Log.Error("Failed to save act",
			zap.String("act_id", actID.String()),
			zap.String("user_id", actor.ID.String()),
			zap.Error(err),
		)
		return nil, apperr.Internal("error saving act", err)
	}

	logger.Log.Info("Act saved",
		zap.String("saved_act_id", saved.ID.String()),
		zap.String("act_id", actID.String()),
		zap.String("user_id", actor.ID.String()),
	)

	return saved, nil
}

// ListForUser returns only the caller's own bookmarks.
func (s *SavedActService) ListForUser(actor policy.Actor) ([]models.SavedAct, error) {
	saved, err := s.savedRepo.GetSavedActsByUser(actor.ID)
	if err != nil {
		return nil, apperr.Internal("error fetching saved acts", err)
	}
	return saved, nil
}

// Complete promotes a bookmark into a completion record. The live act is
// re-fetched for the freshest snapshot; if it has been deleted since the
// save, the stored snapshot is used instead — a gone source act must never
// block completion. The create-then-delete pair is deliberately not wrapped
// in a transaction: if the bookmark deletion fails after the completion is
// written, the duplicate ledger entry is tolerated rather than losing the
// completion.
func (s *SavedActService) Complete(actor policy.Actor, savedActID uuid.UUID) (*models.CompletedAct, error) {
	if actor.IsAdmin() {
		return nil, apperr.Forbidden("admins cannot complete acts")
	}

	saved, err := s.savedRepo.GetSavedActByID(savedActID)
	if err != nil {
		return nil, apperr.Internal("error marking act as completed", err)
	}
	if saved == nil || saved.UserID != actor.ID {
		return nil, apperr.NotFound("saved act not found")
	}

	completed := &models.CompletedAct{
		ID:          uuid.New(),
		UserID:      actor.ID,
		ActID:       saved.ActID,
		Title:       saved.Title,
		Description: saved.Description,
		Category:    saved.Category,
		Difficulty:  saved.Difficulty,
		CompletedAt: time.Now(),
	}

	act, err := s.actRepo.GetActByID(saved.ActID)
	if err != nil {
		return nil, apperr.Internal("error marking act as completed", err)
	}
	if act != nil {
		completed.Title = act.Title
		completed.Description = act.Description
		completed.Category = act.Category
		completed.Difficulty = act.Difficulty
	}

	if err := s.completedRepo.CreateCompletedAct(completed); err != nil {
		logger.Log.Error("Failed to create completed act",
			zap.String("saved_act_id", savedActID.String()),
			zap.String("user_id", actor.ID.String()),
			zap.Error(err),
		)
		return nil, apperr.Internal("error marking act as completed", err)
	}

	if err := s.savedRepo.DeleteSavedAct(savedActID); err != nil {
		logger.Log.Warn("Completed act recorded but saved act removal failed",
			zap.String("saved_act_id", savedActID.String()),
			zap.String("completed_act_id", completed.ID.String()),
			zap.Error(err),
		)
	}

	s.record(completed.ActID, actor, "promoted from saved act")

	logger.Log.Info("Act marked as completed",
		zap.String("completed_act_id", completed.ID.String()),
		zap.String("act_id", completed.ActID.String()),
		zap.String("user_id", actor.ID.String()),
	)

	return completed, nil
}

// Unsave removes a bookmark without recording a completion.
func (s *SavedActService) Unsave(actor policy.Actor, savedActID uuid.UUID) error {
	if actor.IsAdmin() {
		return apperr.Forbidden("admins cannot unsave acts")
	}

	saved, err := s.savedRepo.GetSavedActByID(savedActID)
	if err != nil {
		return apperr.Internal("error removing saved act", err)
	}
	if saved == nil || saved.UserID != actor.ID {
		return apperr.NotFound("saved act not found")
	}

	if err := s.savedRepo.DeleteSavedAct(savedActID); err != nil {
		logger.Log.Error("Failed to delete saved act",
			zap.String("saved_act_id", savedActID.String()),
			zap.Error(err),
		)
		return apperr.Internal("error removing saved act", err)
	}

	logger.Log.Info("Saved act removed",
		zap.String("saved_act_id", savedActID.String()),
		zap.String("user_id", actor.ID.String()),
	)

	return nil
}

func (s *SavedActService) record(actID uuid.UUID, actor policy.Actor, detail string) {
	if s.trail == nil {
		return
	}
	_ = s.trail.Record(audit.Entry{
		Event:     audit.EventActCompleted,
		ActID:     actID.String(),
		ActorID:   actor.ID.String(),
		ActorRole: string(actor.Role),
		Detail:    detail,
	})
}
