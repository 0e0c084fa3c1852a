package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/megane-nerdo/skillhubnext/internal/models"
)

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	// uuid_generate_v4 backs the id defaults.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("create uuid extension: %w", err)
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.Employer{},
		&models.JobSeeker{},
		&models.Category{},
		&models.Industry{},
		&models.SubscriptionPlan{},
		&models.Subscription{},
		&models.Job{},
		&models.Application{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
