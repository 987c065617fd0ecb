package config

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database from DB_URL. A missing DB_URL is a valid state:
// the process comes up without a store and every repository call reports
// "store unavailable" instead of the process crashing.
func Connect() (*gorm.DB, error) {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Println("[DB] DB_URL not set, running without a backing store")
		return nil, nil
	}

	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}

	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey, which the controllers map to 409.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	log.Println("[DB] Database connection established")
	return db, nil
}
