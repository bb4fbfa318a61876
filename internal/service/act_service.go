package service

import (
	"github.com/google/uuid"
	"github.com/kindnet/kindness-api/internal/apperr"
	"github.com/kindnet/kindness-api/internal/audit"
	"github.com/kindnet/kindness-api/internal/models"
	"github.com/kindnet/kindness-api/internal/policy"
	"github.com/kindnet/kindness-api/internal/repository"
	"github.com/kindnet/kindness-api/pkg/logger"
	"go.uber.org/zap"
)

// CreateActInput carries the caller-supplied fields for a new act. Status is
// only honored for admins; see policy.CreationStatus.
type CreateActInput struct {
	Title       string
	Description string
	Category    string
	Difficulty  models.Difficulty
	Status      models.ActStatus
}

type ActService struct {
	actRepo *repository.ActRepository
	trail   *audit.Trail
}

func NewActService(actRepo *repository.ActRepository, trail *audit.Trail) *ActService {
	return &ActService{
		actRepo: actRepo,
		trail:   trail,
	}
}

func (s *ActService) CreateAct(actor policy.Actor, input CreateActInput) (*models.KindnessAct, error) {
	act := &models.KindnessAct{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Difficulty:  input.Difficulty,
		Status:      policy.CreationStatus(actor, input.Status),
		CreatedBy:   actor.ID,
	}

	if err := s.actRepo.CreateAct(act); err != nil {
		logger.Log.Error("Failed to create kindness act",
			zap.String("actor_id", actor.ID.String()),
			zap.Error(err),
		)
		return nil, apperr.Internal("error creating kindness act", err)
	}

	s.record(audit.EventActCreated, act.ID, actor, string(act.Status))

	logger.Log.Info("Kindness act created",
		zap.String("act_id", act.ID.String()),
		zap.String("actor_id", actor.ID.String()),
		zap.String("status", string(act.Status)),
	)

	return act, nil
}

func (s *ActService) GetActByID(id uuid.UUID) (*models.KindnessAct, error) {
	act, err := s.actRepo.GetActByID(id)
	if err != nil {
		return nil, apperr.Internal("error retrieving kindness act", err)
	}
	if act == nil {
		return nil, apperr.NotFound("kindness act doesn't exist")
	}
	return act, nil
}

// ListApproved is the public catalog view.
func (s *ActService) ListApproved() ([]models.KindnessAct, error) {
	acts, err := s.actRepo.GetApprovedActs()
	if err != nil {
		return nil, apperr.Internal("failed to load approved acts", err)
	}
	return acts, nil
}

// ListByCreator returns the actor's own suggestions, any status.
func (s *ActService) ListByCreator(actor policy.Actor) ([]models.KindnessAct, error) {
	acts, err := s.actRepo.GetActsByCreator(actor.ID)
	if err != nil {
		return nil, apperr.Internal("error retrieving user kindness acts", err)
	}
	return acts, nil
}

// ListAll returns every act regardless of status. The admin gate is the
// route middleware, not this method.
func (s *ActService) ListAll() ([]models.KindnessAct, error) {
	acts, err := s.actRepo.GetAllActs()
	if err != nil {
		return nil, apperr.Internal("error retrieving all kindness acts", err)
	}
	return acts, nil
}

func (s *ActService) UpdateAct(actor policy.Actor, id uuid.UUID, update policy.ActUpdate) (*models.KindnessAct, error) {
	act, err := s.actRepo.GetActByID(id)
	if err != nil {
		return nil, apperr.Internal("error while updating the act", err)
	}
	if act == nil {
		return nil, apperr.NotFound("kindness act doesn't exist")
	}

	sanitized, err := policy.SanitizeUpdate(actor, act, update)
	if err != nil {
		logger.Log.Warn("Act update denied",
			zap.String("act_id", id.String()),
			zap.String("actor_id", actor.ID.String()),
		)
		return nil, err
	}

	fields := updateFields(sanitized)
	if len(fields) == 0 {
		return act, nil
	}

	updated, err := s.actRepo.UpdateAct(id, fields)
	if err != nil {
		logger.Log.Error("Failed to update kindness act",
			zap.String("act_id", id.String()),
			zap.Error(err),
		)
		return nil, apperr.Internal("error while updating the act", err)
	}

	s.record(audit.EventActUpdated, id, actor, string(updated.Status))

	logger.Log.Info("Kindness act updated",
		zap.String("act_id", id.String()),
		zap.String("actor_id", actor.ID.String()),
		zap.String("status", string(updated.Status)),
	)

	return updated, nil
}

func (s *ActService) DeleteAct(actor policy.Actor, id uuid.UUID) error {
	act, err := s.actRepo.GetActByID(id)
	if err != nil {
		return apperr.Internal("error deleting kindness act", err)
	}
	if act == nil {
		return apperr.NotFound("kindness act doesn't exist")
	}

	if err := policy.CanDelete(actor, act); err != nil {
		logger.Log.Warn("Act delete denied",
			zap.String("act_id", id.String()),
			zap.String("actor_id", actor.ID.String()),
		)
		return err
	}

	if err := s.actRepo.DeleteAct(id); err != nil {
		logger.Log.Error("Failed to delete kindness act",
			zap.String("act_id", id.String()),
			zap.Error(err),
		)
		return apperr.Internal("error deleting kindness act", err)
	}

	s.record(audit.EventActDeleted, id, actor, "")

	logger.Log.Info("Kindness act deleted",
		zap.String("act_id", id.String()),
		zap.String("actor_id", actor.ID.String()),
	)

	return nil
}

// record writes a best-effort audit entry; failures are logged inside the
// trail and never fail the request.
func (s *ActService) record(event string, actID uuid.UUID, actor policy.Actor, detail string) {
	if s.trail == nil {
		return
	}
	_ = s.trail.Record(audit.Entry{
		Event:     event,
		ActID:     actID.String(),
		ActorID:   actor.ID.String(),
		ActorRole: string(actor.Role),
		Detail:    detail,
	})
}

// updateFields flattens the sanitized change into a gorm update map,
// skipping fields the caller did not send.
func updateFields(update policy.ActUpdate) map[string]interface{} {
	fields := map[string]interface{}{}
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.Category != nil {
		fields["category"] = *update.Category
	}
	if update.Difficulty != nil {
		fields["difficulty"] = *update.Difficulty
	}
	if update.Status != nil {
		fields["status"] = *update.Status
	}
	return fields
}
