package database

import (
	"cinelist/internal/repository"

	"gorm.io/gorm"
)

// Migrate brings the schema up to date. It is additive-only and safe to run
// on every process start: existing tables gain missing columns, nothing is
// dropped or renamed, and the unique index on owners.username is ensured.
// A failure here is fatal for the caller; the process cannot serve without
// a valid schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(repository.Models()...)
}
