package repositories

import (
	"fmt"
	"log"

	"github.com/xero1ghost/arcania-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres database behind the given connection string
// and runs migrations for the user table.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	log.Println("Successfully connected to database")
	return db, nil
}
