package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/archidesk/config"
	"github.com/archidesk/database"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig() config.Config {
	return config.Config{
		JWTSecret:    "test-secret",
		TokenExpiry:  time.Hour,
		AdminCode:    "ADMIN123",
		DefaultLimit: 10,
		MaxLimit:     100,
	}
}

// setupRouter builds the full v1 router backed by a fresh in-memory
// database, mirroring the production wiring in main.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		sqlDB.Close()
	})

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), testConfig())
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var parsed map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	}
	return rec, parsed
}

func registerAdmin(t *testing.T, router *gin.Engine) string {
	t.Helper()

	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":      "Ada Admin",
		"email":     "ada@example.com",
		"phone":     "5551234567",
		"password":  "password123",
		"adminCode": "ADMIN123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	return login(t, router, "ada@example.com", "password123")
}

func login(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	rec, body := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "login response carries a data object")
	token, ok := data["token"].(string)
	require.True(t, ok, "login response carries a token")
	require.NotEmpty(t, token)
	return token
}

// addUser creates an architect or client account through the role-gated
// endpoints and returns its id together with a login token.
func addUser(t *testing.T, router *gin.Engine, adminToken, endpoint, email string) (string, string) {
	t.Helper()

	rec, body := doJSON(t, router, http.MethodPost, "/api/v1/auth/"+endpoint, adminToken, gin.H{
		"name":     "Test User",
		"email":    email,
		"phone":    "5559876543",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	id, ok := user["id"].(string)
	require.True(t, ok)

	return id, login(t, router, email, "password123")
}
