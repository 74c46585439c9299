package database

import (
	"budgetbook/config"
	"budgetbook/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the database at the configured path.
func Connect() error {
	cfg := config.GetConfig()
	return Open(cfg.DatabasePath)
}

// Open connects to the database at an explicit path and migrates the
// schema. Tests use this with a path under t.TempDir().
func Open(path string) error {
	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return err
	}

	// Auto-migrate models
	err = DB.AutoMigrate(&models.User{}, &models.Category{}, &models.Transaction{}, &models.AuditLog{})
	if err != nil {
		return err
	}

	return nil
}
