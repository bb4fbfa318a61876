package service

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kindnet/kindness-api/internal/apperr"
	"github.com/kindnet/kindness-api/internal/models"
	"github.com/kindnet/kindness-api/internal/repository"
	"github.com/kindnet/kindness-api/internal/utils"
	"github.com/kindnet/kindness-api/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type AuthService struct {
	userRepo    *repository.UserRepository
	tokenSecret string
	tokenExpiry time.Duration
}

func NewAuthService(userRepo *repository.UserRepository, tokenSecret string, tokenExpiry time.Duration) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		tokenSecret: tokenSecret,
		tokenExpiry: tokenExpiry,
	}
}

// Register creates a new account with role "user". Username and email are
// lowercased before storage so uniqueness is case-insensitive.
func (s *AuthService) Register(username, email, password string) (*models.User, error) {
	logger.Log.Debug("Processing user registration",
		zap.String("username", username),
		zap.String("email", email),
	)

	if err := validateRegisterInput(username, email, password); err != nil {
		logger.Log.Warn("Registration validation failed",
			zap.String("username", username),
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, err
	}

	username = strings.ToLower(username)
	email = strings.ToLower(email)

	existingUser, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		logger.Log.Error("Failed to check email existence",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, apperr.Internal("error registering user", err)
	}
	if existingUser != nil {
		logger.Log.Warn("Email already exists",
			zap.String("email", email),
		)
		return nil, apperr.Conflict("email already exists")
	}

	existingUser, err = s.userRepo.GetUserByUsername(username)
	if err != nil {
		logger.Log.Error("Failed to check username existence",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, apperr.Internal("error registering user", err)
	}
	if existingUser != nil {
		logger.Log.Warn("Username already exists",
			zap.String("username", username),
		)
		return nil, apperr.Conflict("username already exists")
	}

	hashStart := time.Now()
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		logger.Log.Error("Failed to hash password",
			zap.Error(err),
		)
		return nil, apperr.Internal("error registering user", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         models.RoleUser, // Default role
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		// Two concurrent registrations for the same email race on the
		// unique index; the loser surfaces as a conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("email or username already exists")
		}
		logger.Log.Error("Failed to create user in database",
			zap.String("username", username),
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, apperr.Internal("error registering user", err)
	}

	logger.Log.Info("User registered successfully",
		zap.String("user_id", user.ID.String()),
		zap.String("username", username),
		zap.Duration("hash_duration", time.Since(hashStart)),
	)

	return user, nil
}

// Login verifies credentials and issues a signed, time-limited token.
// Unknown email and wrong password share one message so callers cannot
// enumerate accounts.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	logger.Log.Debug("Processing user login",
		zap.String("email", email),
	)

	if err := validateLoginInput(email, password); err != nil {
		return nil, "", err
	}

	user, err := s.userRepo.GetUserByEmail(strings.ToLower(email))
	if err != nil {
		logger.Log.Error("Failed to get user by email",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, "", apperr.Internal("error logging in", err)
	}
	if user == nil {
		logger.Log.Warn("Login failed: user not found",
			zap.String("email", email),
		)
		return nil, "", apperr.Auth("invalid email or password provided")
	}

	valid, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		logger.Log.Error("Failed to verify password",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, "", apperr.Internal("error logging in", err)
	}
	if !valid {
		logger.Log.Warn("Login failed: invalid password",
			zap.String("user_id", user.ID.String()),
		)
		return nil, "", apperr.Auth("invalid email or password provided")
	}

	token, err := utils.GenerateToken(user, s.tokenSecret, s.tokenExpiry)
	if err != nil {
		logger.Log.Error("Failed to generate token",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return nil, "", apperr.Internal("error logging in", err)
	}

	logger.Log.Info("User logged in successfully",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)

	return user, token, nil
}

func validateRegisterInput(username, email, password string) error {
	if len(username) < 2 {
		return apperr.Validation("username must be at least 2 characters")
	}
	if len(username) > 255 {
		return apperr.Validation("username cannot exceed 255 characters")
	}

	if err := validateLoginInput(email, password); err != nil {
		return err
	}

	return nil
}

func validateLoginInput(email, password string) error {
	if len(email) < 6 || len(email) > 255 || !emailRegex.MatchString(email) {
		return apperr.Validation("email must be a valid email address")
	}

	if len(password) < 6 {
		return apperr.Validation("password must be at least 6 characters")
	}
	if len(password) > 20 {
		return apperr.Validation("password cannot exceed 20 characters")
	}

	return nil
}
