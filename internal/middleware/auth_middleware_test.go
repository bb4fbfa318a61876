package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kindnet/kindness-api/internal/middleware"
	"github.com/kindnet/kindness-api/internal/models"
	"github.com/kindnet/kindness-api/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	protected := router.Group("/", middleware.AuthMiddleware(testSecret))
	protected.GET("/whoami", func(c *gin.Context) {
		actor, ok := middleware.ActorFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": actor.ID, "role": actor.Role})
	})
	protected.GET("/admin", middleware.AdminMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func tokenFor(t *testing.T, role models.Role) string {
	t.Helper()
	user := &models.User{ID: uuid.New(), Role: role}
	token, err := utils.GenerateToken(user, testSecret, 2*time.Hour)
	require.NoError(t, err)
	return token
}

func request(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	router := setupRouter()

	w := request(router, "/whoami", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no token provided")
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	router := setupRouter()

	w := request(router, "/whoami", "not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired")
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	router := setupRouter()

	user := &models.User{ID: uuid.New(), Role: models.RoleUser}
	token, err := utils.GenerateToken(user, testSecret, -time.Hour)
	require.NoError(t, err)

	w := request(router, "/whoami", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareSetsActor(t *testing.T) {
	router := setupRouter()

	w := request(router, "/whoami", tokenFor(t, models.RoleUser))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"user"`)
}

func TestAdminMiddleware(t *testing.T) {
	router := setupRouter()

	w := request(router, "/admin", tokenFor(t, models.RoleUser))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = request(router, "/admin", tokenFor(t, models.RoleAdmin))
	assert.Equal(t, http.StatusOK, w.Code)
}
