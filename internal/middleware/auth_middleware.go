package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kindnet/kindness-api/internal/models"
	"github.com/kindnet/kindness-api/internal/policy"
	"github.com/kindnet/kindness-api/internal/utils"
)

// TokenHeader is the custom header carrying the signed token. Kept for
// compatibility with existing clients; this is not a Bearer scheme.
const TokenHeader = "auth-token"

// AuthMiddleware verifies the auth-token header and stows the actor identity
// in the request context. A missing token is a 400, an invalid or expired
// one a 401.
func AuthMiddleware(tokenSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader(TokenHeader)
		if tokenString == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "access denied as no token provided",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString, tokenSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "verification failed due to invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_role", claims.Role)
		c.Set("actor", policy.Actor{ID: claims.UserID, Role: claims.Role})

		c.Next()
	}
}

// AdminMiddleware gates admin-only routes. Must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized",
			})
			c.Abort()
			return
		}

		if role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// ActorFromContext retrieves the authenticated actor set by AuthMiddleware.
func ActorFromContext(c *gin.Context) (policy.Actor, bool) {
	value, exists := c.Get("actor")
	if !exists {
		return policy.Actor{}, false
	}
	actor, ok := value.(policy.Actor)
	return actor, ok
}
