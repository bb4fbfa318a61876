package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kindnet/kindness-api/internal/middleware"
	"github.com/kindnet/kindness-api/internal/service"
)

type SavedHandler struct {
	savedService *service.SavedActService
}

func NewSavedHandler(savedService *service.SavedActService) *SavedHandler {
	return &SavedHandler{
		savedService: savedService,
	}
}

type SaveActRequest struct {
	Act string `json:"act" binding:"required,uuid"`
}

// Save handles POST /saved
func (h *SavedHandler) Save(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req SaveActRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	saved, err := h.savedService.Save(actor, uuid.MustParse(req.Act))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// List handles GET /saved (caller's own bookmarks only)
func (h *SavedHandler) List(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	saved, err := h.savedService.ListForUser(actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}

// Complete handles PUT /saved/:id/complete
func (h *SavedHandler) Complete(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid saved act ID format"})
		return
	}

	completed, err := h.savedService.Complete(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "act marked as completed",
		"completedAct": completed,
	})
}

// Unsave handles DELETE /saved/:id
func (h *SavedHandler) Unsave(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid saved act ID format"})
		return
	}

	if err := h.savedService.Unsave(actor, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "saved act removed",
	})
}
