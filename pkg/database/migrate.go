package database

import (
	"fmt"

	"noteboard-be/internal/model"

	"gorm.io/gorm"
)

// Models lists the tables owned by the service, parents before children.
// note_tags is created from the Note.Tags association.
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Notebook{},
		&model.Tag{},
		&model.Note{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		return fmt.Errorf("enable pgcrypto: %w", err)
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
