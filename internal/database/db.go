package database

import (
	"log"

	"github.com/kindnet/kindness-api/internal/config"
	"github.com/kindnet/kindness-api/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the connection pool once at startup; repositories share the
// returned handle. An unreachable database is fatal.
func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		// Surface unique-index violations as gorm.ErrDuplicatedKey so
		// races between concurrent writes resolve to a conflict error.
		TranslateError: true,
	})

	if err != nil {
		log.Fatal("Failed to connect database:", err)
	}

	log.Println("Database connected successfully")
	return db
}

func Migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.KindnessAct{},
		&models.SavedAct{},
		&models.CompletedAct{},
	)

	if err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Database migration completed")
}
