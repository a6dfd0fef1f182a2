package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/locallibrary/internal/database"
)

func setupHealthTestDB(t *testing.T) *database.Database {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "health.db"), database.WithLogLevel("silent"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// blockingPinger never answers before its context ends.
type blockingPinger struct{}

func (blockingPinger) Ping(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func getHealth(t *testing.T, controller *HealthController) (int, HealthResponse) {
	t.Helper()
	router := gin.New()
	router.GET("/health", controller.Status)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return w.Code, response
}

func TestHealthController_Status(t *testing.T) {
	t.Run("ok when the store answers", func(t *testing.T) {
		code, response := getHealth(t, NewHealthController(setupHealthTestDB(t), "1.0.0"))

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ok", response.Status)
		assert.Equal(t, "1.0.0", response.Version)
		assert.True(t, response.Store.OK)
		assert.NotEmpty(t, response.Store.Latency)
		assert.Empty(t, response.Store.Error)
		_, err := time.Parse(time.RFC3339, response.Time)
		assert.NoError(t, err)
	})

	t.Run("degraded when the store is closed", func(t *testing.T) {
		db := setupHealthTestDB(t)
		require.NoError(t, db.Close())

		code, response := getHealth(t, NewHealthController(db, "1.0.0"))

		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "degraded", response.Status)
		assert.False(t, response.Store.OK)
		assert.NotEmpty(t, response.Store.Error)
	})

	t.Run("a hanging store is cut off by the ping timeout", func(t *testing.T) {
		controller := NewHealthController(blockingPinger{}, "")
		controller.pingTimeout = 20 * time.Millisecond

		code, response := getHealth(t, controller)

		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Contains(t, response.Store.Error, context.DeadlineExceeded.Error())
	})
}

func TestRouter_HealthMountedOnlyWithStore(t *testing.T) {
	gin.SetMode(gin.TestMode)

	withStore := NewRouter(RouterConfig{Catalog: &stubCatalog{}, Database: setupHealthTestDB(t), Version: "2.5.3"})
	w := get(withStore, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":"2.5.3"`)

	withoutStore := NewRouter(RouterConfig{Catalog: &stubCatalog{}})
	w = get(withoutStore, "/health")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProbeCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(RouterConfig{
		Catalog:     &stubCatalog{},
		CORSOrigins: []string{"https://status.example.org"},
	})

	t.Run("allowed origin can read ping", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "https://status.example.org")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://status.example.org", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("catalog pages carry no CORS headers", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/catalog/book/create", nil)
		req.Header.Set("Origin", "https://status.example.org")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("disabled without origins", func(t *testing.T) {
		plain := NewRouter(RouterConfig{Catalog: &stubCatalog{}})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "https://status.example.org")
		plain.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
