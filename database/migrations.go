package database

import (
	"log"

	"kard-tasks/kard/models"

	"gorm.io/gorm"
)

// RunMigrations creates or updates the usuarios and atividades tables.
// atividades references usuarios with ON DELETE CASCADE. It is safe to run
// against an already migrated schema.
func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Activity{},
	)

	if err != nil {
		log.Printf("Migration failed: %v", err)
		return err
	}

	if err := migrateActivityOrder(db); err != nil {
		log.Printf("Migration of atividades.ordem failed: %v", err)
		return err
	}

	return nil
}

// migrateActivityOrder adds the ordem counter, which AutoMigrate skips. On
// postgres it is backed by a sequence; elsewhere values are computed on
// insert by models.Ordem.
func migrateActivityOrder(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		return db.Exec("ALTER TABLE atividades ADD COLUMN IF NOT EXISTS ordem BIGSERIAL").Error
	}

	if db.Migrator().HasColumn(&models.Activity{}, "ordem") {
		return nil
	}
	return db.Exec("ALTER TABLE atividades ADD COLUMN ordem INTEGER").Error
}
