package repositories

import (
	"fmt"
	"testing"

	"tuneshop-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Order{},
		&models.File{},
		&models.TimelineEvent{},
		&models.Payment{},
		&models.Setting{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewStore(db)
}

func seedClient(t *testing.T, store *Store, first, last string) models.Client {
	t.Helper()
	client := models.Client{FirstName: first, LastName: last, Phone: "+48123456789"}
	db, err := store.DB()
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return client
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
