package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kindnet/kindness-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret        = "test-secret-key-for-jwt-testing"
	testWrongSecret   = "wrong-secret-key-for-jwt-testing"
	testTokenDuration = 2 * time.Hour
)

func createTestUser(role models.Role) *models.User {
	return &models.User{
		ID:       uuid.New(),
		Username: "testuser",
		Email:    "test@example.com",
		Role:     role,
	}
}

func TestGenerateToken_Success(t *testing.T) {
	user := createTestUser(models.RoleUser)

	token, err := GenerateToken(user, testSecret, testTokenDuration)

	require.NoError(t, err, "GenerateToken should not return error for valid input")
	assert.NotEmpty(t, token, "Token should not be empty")
	assert.Contains(t, token, ".", "JWT token should contain dots")
}

func TestGenerateToken_ClaimsRoundTrip(t *testing.T) {
	roles := []models.Role{models.RoleUser, models.RoleAdmin}

	for _, role := range roles {
		t.Run(string(role), func(t *testing.T) {
			user := createTestUser(role)

			token, err := GenerateToken(user, testSecret, testTokenDuration)
			require.NoError(t, err)

			claims, err := ValidateToken(token, testSecret)
			require.NoError(t, err)
			assert.Equal(t, user.ID, claims.UserID, "Token should bind the account ID")
			assert.Equal(t, role, claims.Role, "Token should bind the role")
		})
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	user := createTestUser(models.RoleUser)

	token, err := GenerateToken(user, testSecret, testTokenDuration)
	require.NoError(t, err)

	claims, err := ValidateToken(token, testWrongSecret)
	assert.Error(t, err, "Validation must fail with the wrong secret")
	assert.Nil(t, claims)
}

func TestValidateToken_Expired(t *testing.T) {
	user := createTestUser(models.RoleUser)

	token, err := GenerateToken(user, testSecret, -1*time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(token, testSecret)
	assert.Error(t, err, "Expired token must not validate")
	assert.Nil(t, claims)
}

func TestValidateToken_Malformed(t *testing.T) {
	claims, err := ValidateToken("not-a-token", testSecret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
