package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kindnet/kindness-api/internal/middleware"
	"github.com/kindnet/kindness-api/internal/models"
	"github.com/kindnet/kindness-api/internal/policy"
	"github.com/kindnet/kindness-api/internal/service"
	"github.com/kindnet/kindness-api/pkg/logger"
	"go.uber.org/zap"
)

type ActHandler struct {
	actService *service.ActService
}

func NewActHandler(actService *service.ActService) *ActHandler {
	return &ActHandler{
		actService: actService,
	}
}

type CreateActRequest struct {
	Title       string            `json:"title" binding:"required,min=3,max=60"`
	Description string            `json:"description" binding:"required,min=20,max=255"`
	Category    string            `json:"category" binding:"omitempty,max=255"`
	Difficulty  models.Difficulty `json:"difficulty" binding:"required,oneof=easy medium hard"`
	Status      models.ActStatus  `json:"status" binding:"omitempty,oneof=pending approved rejected"`
}

// UpdateActRequest is a partial update; absent fields stay untouched.
type UpdateActRequest struct {
	Title       *string            `json:"title" binding:"omitempty,min=3,max=60"`
	Description *string            `json:"description" binding:"omitempty,min=20,max=255"`
	Category    *string            `json:"category" binding:"omitempty,max=255"`
	Difficulty  *models.Difficulty `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	Status      *models.ActStatus  `json:"status" binding:"omitempty,oneof=pending approved rejected"`
}

// Create handles POST /acts
func (h *ActHandler) Create(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req CreateActRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Create act request parsing failed",
			zap.String("actor_id", actor.ID.String()),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	act, err := h.actService.CreateAct(actor, service.CreateActInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		Status:      req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, act)
}

// ListApproved handles GET /acts (public catalog)
func (h *ActHandler) ListApproved(c *gin.Context) {
	acts, err := h.actService.ListApproved()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, acts)
}

// ListMine handles GET /acts/user (caller's own suggestions, any status)
func (h *ActHandler) ListMine(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	acts, err := h.actService.ListByCreator(actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, acts)
}

// ListAll handles GET /acts/all (admin only, gated by middleware)
func (h *ActHandler) ListAll(c *gin.Context) {
	acts, err := h.actService.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, acts)
}

// GetByID handles GET /acts/:id
func (h *ActHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid act ID format"})
		return
	}

	act, err := h.actService.GetActByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, act)
}

// Update handles PUT /acts/:id
func (h *ActHandler) Update(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid act ID format"})
		return
	}

	var req UpdateActRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	act, err := h.actService.UpdateAct(actor, id, policy.ActUpdate{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		Status:      req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "kindness act successfully updated",
		"updatedAct": act,
	})
}

// Delete handles DELETE /acts/:id
func (h *ActHandler) Delete(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid act ID format"})
		return
	}

	if err := h.actService.DeleteAct(actor, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "the kindness act has been removed",
	})
}
