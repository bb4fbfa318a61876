package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/kindnet/kindness-api/internal/apperr"
)

// respondError translates any service error into the matching HTTP status
// and a JSON {error: message} body. Unclassified errors come out as opaque
// 500s so internals never leak to clients.
func respondError(c *gin.Context, err error) {
	status, message := apperr.StatusAndMessage(err)
	c.JSON(status, gin.H{"error": message})
}
