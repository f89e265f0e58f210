package db

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	models "igreja-digital/secretaria/internal/models/gorm"
)

func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return db, nil
}

// InitSQLiteORM opens an isolated in-memory SQLite database with the full
// schema migrated. Used by service tests.
func InitSQLiteORM() (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// AutoMigrate creates or updates the schema for every entity.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Member{},
		&models.Catechumen{},
		&models.Seminarian{},
		&models.Visitor{},
		&models.AuditLog{},
		&models.Tithe{},
		&models.Offering{},
		&models.BookstoreSale{},
		&models.Loan{},
		&models.Expense{},
		&models.DiaconalHelp{},
		&models.Bulletin{},
		&models.LgpdConsent{},
		&models.LgpdRequest{},
	)
	if err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}
