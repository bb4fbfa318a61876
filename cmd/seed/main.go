// Command seed provisions the initial admin account. Role is not settable
// through any API endpoint, so the admin is created out-of-band.
package main

import (
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/kindnet/kindness-api/internal/config"
	"github.com/kindnet/kindness-api/internal/database"
	"github.com/kindnet/kindness-api/internal/models"
	"github.com/kindnet/kindness-api/internal/utils"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg)
	database.Migrate(db)

	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminUsername == "" || adminEmail == "" || adminPassword == "" {
		log.Fatal("Missing environment variables: ADMIN_USERNAME, ADMIN_EMAIL, ADMIN_PASSWORD")
	}

	adminUsername = strings.ToLower(adminUsername)
	adminEmail = strings.ToLower(adminEmail)

	var admin models.User
	result := db.Where("email = ?", adminEmail).First(&admin)

	if result.Error == nil {
		log.Println("Admin user already exists:", admin.Username)
		log.Println("  Email:", admin.Email)
		return
	}

	passwordHash, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin = models.User{
		ID:           uuid.New(),
		Username:     adminUsername,
		Email:        adminEmail,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	log.Println("Admin user created:", admin.Username)
	log.Println("  Email:", admin.Email)
}
