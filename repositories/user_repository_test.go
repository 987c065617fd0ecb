package repositories

import (
	"testing"

	"tuneshop-backend/models"
)

func TestUserUpsertCreatesOnFirstLogin(t *testing.T) {
	t.Setenv("OWNER_OPEN_ID", "owner-123")
	store := setupTestStore(t)
	repo := NewUserRepository(store)

	user, err := repo.Upsert(UserUpsert{OpenID: "someone-1", Name: "Kuba", Email: "k@example.com"})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if user.ID == 0 || user.Role != "user" {
		t.Fatalf("unexpected user: %+v", user)
	}

	owner, err := repo.Upsert(UserUpsert{OpenID: "owner-123", Name: "Boss"})
	if err != nil {
		t.Fatalf("owner upsert: %v", err)
	}
	if owner.Role != "admin" {
		t.Fatalf("owner role = %q, want admin", owner.Role)
	}
}

func TestUserUpsertIsIdempotentByOpenID(t *testing.T) {
	t.Setenv("OWNER_OPEN_ID", "")
	store := setupTestStore(t)
	repo := NewUserRepository(store)

	first, err := repo.Upsert(UserUpsert{OpenID: "dup-1", Name: "Old Name"})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second, err := repo.Upsert(UserUpsert{OpenID: "dup-1", Name: "New Name", LoginMethod: "google"})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("upsert created a second user: %d vs %d", second.ID, first.ID)
	}
	if second.Name != "New Name" || second.LoginMethod != "google" {
		t.Fatalf("identity fields not refreshed: %+v", second)
	}

	db, _ := store.DB()
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Fatalf("users = %d, want 1", count)
	}
}

func TestUserUpsertRequiresOpenID(t *testing.T) {
	store := setupTestStore(t)
	repo := NewUserRepository(store)

	if _, err := repo.Upsert(UserUpsert{Name: "No Identity"}); err == nil {
		t.Fatal("expected error for missing openId")
	}
}
