package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kindnet/kindness-api/internal/middleware"
	"github.com/kindnet/kindness-api/internal/service"
)

type CompletedHandler struct {
	completedService *service.CompletedActService
}

func NewCompletedHandler(completedService *service.CompletedActService) *CompletedHandler {
	return &CompletedHandler{
		completedService: completedService,
	}
}

type CompleteActRequest struct {
	Act string `json:"act" binding:"required,uuid"`
}

// Create handles POST /completed (direct completion, no bookmark involved)
func (h *CompletedHandler) Create(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req CompleteActRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	completed, err := h.completedService.CreateDirect(actor, uuid.MustParse(req.Act))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, completed)
}

// ListByUser handles GET /completed/:userId
func (h *CompletedHandler) ListByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID format"})
		return
	}

	completed, err := h.completedService.ListForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, completed)
}
