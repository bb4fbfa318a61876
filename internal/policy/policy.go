// Package policy holds the pure permission rules for the kindness act
// lifecycle. Nothing here touches storage; callers load the act, ask for a
// decision, then apply it.
package policy

import (
	"github.com/google/uuid"
	"github.com/kindnet/kindness-api/internal/apperr"
	"github.com/kindnet/kindness-api/internal/models"
)

// Actor is the authenticated identity a decision is made for.
type Actor struct {
	ID   uuid.UUID
	Role models.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// ActUpdate is a partial change to an act. Nil fields are left untouched.
type ActUpdate struct {
	Title       *string
	Description *string
	Category    *string
	Difficulty  *models.Difficulty
	Status      *models.ActStatus
}

// CanMutate reports whether the actor may update or delete the act:
// allowed iff the actor created it or is an admin.
func CanMutate(actor Actor, act *models.KindnessAct) error {
	if actor.ID == act.CreatedBy || actor.IsAdmin() {
		return nil
	}
	return apperr.Forbidden("you do not have permission to modify this kindness act")
}

// SanitizeUpdate gates an update and returns the change that may actually be
// stored. A non-admin edit always forces status back to "pending", whatever
// the caller supplied; self-approval is not a thing. Admin status values pass
// through unchanged.
func SanitizeUpdate(actor Actor, act *models.KindnessAct, update ActUpdate) (ActUpdate, error) {
	if err := CanMutate(actor, act); err != nil {
		return ActUpdate{}, err
	}

	if !actor.IsAdmin() {
		pending := models.StatusPending
		update.Status = &pending
	}

	return update, nil
}

// CanDelete uses the same ownership rule as updates, with no sanitization.
func CanDelete(actor Actor, act *models.KindnessAct) error {
	return CanMutate(actor, act)
}

// CreationStatus decides the status of a freshly created act. Any
// authenticated actor may create; non-admins always start at "pending",
// admins get their requested status or "approved" when they gave none.
func CreationStatus(actor Actor, requested models.ActStatus) models.ActStatus {
	if !actor.IsAdmin() {
		return models.StatusPending
	}
	if requested == "" {
		return models.StatusApproved
	}
	return requested
}
