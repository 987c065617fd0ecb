package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"tuneshop-backend/repositories"
	"tuneshop-backend/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testRouter(t *testing.T, store *repositories.Store) *gin.Engine {
	t.Helper()
	return SetupRouter(store, storage.NewDiskStorage(t.TempDir(), "/files"))
}

func TestHealthReportsStoreAvailability(t *testing.T) {
	r := testRouter(t, repositories.NewStore(nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Status   string `json:"status"`
		Database bool   `json:"database"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" || resp.Database {
		t.Fatalf("degraded health = %+v, want ok with database false", resp)
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	r = testRouter(t, repositories.NewStore(db))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Database {
		t.Fatalf("connected health = %+v, want database true", resp)
	}
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := testRouter(t, repositories.NewStore(nil))

	protected := []struct{ method, path string }{
		{"GET", "/api/clients"},
		{"POST", "/api/orders"},
		{"GET", "/api/dashboard/stats"},
		{"PUT", "/api/settings"},
	}
	for _, route := range protected {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(route.method, route.path, nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without session = %d, want 401", route.method, route.path, w.Code)
		}
	}

	// Bad credentials are rejected the same way, before any handler runs.
	req := httptest.NewRequest("GET", "/api/clients", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token = %d, want 401", w.Code)
	}
}
