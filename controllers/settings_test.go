package controllers

import (
	"net/http"
	"testing"

	"tuneshop-backend/repositories"

	"github.com/gin-gonic/gin"
)

func settingsTestRouter(t *testing.T) (*gin.Engine, *repositories.Store) {
	t.Helper()
	store := setupTestStore(t)
	sc := NewSettingsController(repositories.NewSettingRepository(store))

	r := gin.New()
	api := r.Group("/api", fakeAuth)
	api.GET("/settings", sc.Get)
	api.PUT("/settings", sc.Update)
	return r, store
}

func TestSettingsGetBeforeSaveIsNull(t *testing.T) {
	r, _ := settingsTestRouter(t)

	w := doJSON(t, r, "GET", "/api/settings", nil)
	expectStatus(t, w, http.StatusOK)
	if body := w.Body.String(); body != "null" {
		t.Fatalf("expected null body, got %s", body)
	}
}

func TestSettingsUpdateUpserts(t *testing.T) {
	r, store := settingsTestRouter(t)

	w := doJSON(t, r, "PUT", "/api/settings", gin.H{
		"workshopName":  "BoostWorks",
		"defaultMargin": "25",
	})
	expectStatus(t, w, http.StatusOK)

	setting, err := repositories.NewSettingRepository(store).Get()
	if err != nil || setting == nil {
		t.Fatalf("settings lookup: %v %v", err, setting)
	}
	if setting.WorkshopName != "BoostWorks" || setting.DefaultMargin != 25 {
		t.Fatalf("upsert wrong: %+v", setting)
	}
}
