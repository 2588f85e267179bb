package migrations

import (
	"gorm.io/gorm"

	"opsportal/internal/infrastructure/persistence/models"
)

// MigrateAll creates or updates all application tables. Used by the dev
// auto-migrate path; production deploys run the goose SQL migrations.
func MigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ProfileModel{},
		&models.TaskModel{},
		&models.TaskCommentModel{},
		&models.ViolationModel{},
	)
}
