package repositories

import (
	"log"

	"github.com/studyhub-dev/studyhub/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database and runs migrations. TranslateError makes the
// driver surface unique-index violations as gorm.ErrDuplicatedKey, so the
// uniqueness constraints on email and fileName are enforced by the store
// itself rather than by check-then-insert in the handlers.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	// Run migrations
	if err := db.AutoMigrate(&models.User{}, &models.Material{}); err != nil {
		return nil, err
	}
	log.Println("Successfully connected to database")
	return db, nil
}
