package config

import (
	"log/slog"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Gusttavohenn/finandash-fullstack/models"
)

var DB *gorm.DB

// ConnectDB opens the Postgres connection from DB_URL and migrates the
// schema. The process cannot do anything useful without a database, so any
// failure here is fatal.
func ConnectDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		slog.Error("DB_URL environment variable is not set")
		os.Exit(1)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Transaction{},
		&models.Budget{},
		&models.RecurringTransaction{},
		&models.Reminder{},
	); err != nil {
		slog.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	DB = db
	slog.Info("connected to database")
}
