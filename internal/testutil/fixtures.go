package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/kindnet/kindness-api/internal/models"
	"github.com/kindnet/kindness-api/internal/policy"
	"github.com/kindnet/kindness-api/internal/utils"
)

// CreateTestUser creates a user fixture with a real password hash.
func CreateTestUser(username, email, password string, role models.Role) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}, nil
}

// DefaultTestUser returns a default regular user
func DefaultTestUser() (*models.User, error) {
	return CreateTestUser("testuser", "test@example.com", "Test123456", models.RoleUser)
}

// DefaultAdminUser returns a default admin user
func DefaultAdminUser() (*models.User, error) {
	return CreateTestUser("admin", "admin@example.com", "Admin123456", models.RoleAdmin)
}

// CreateTestAct creates a kindness act fixture with valid field bounds.
func CreateTestAct(createdBy uuid.UUID, status models.ActStatus) *models.KindnessAct {
	return &models.KindnessAct{
		ID:          uuid.New(),
		Title:       "Hold the door",
		Description: "Hold the door open for the person walking in behind you.",
		Category:    "everyday",
		Difficulty:  models.DifficultyEasy,
		Status:      status,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// ActorFor builds the policy actor for a user fixture.
func ActorFor(user *models.User) policy.Actor {
	return policy.Actor{ID: user.ID, Role: user.Role}
}
