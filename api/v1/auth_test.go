package v1

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoint(t *testing.T) {
	router := setupRouter(t)

	rec, body := doJSON(t, router, http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "archidesk-api", body["service"])
}

func TestRegisterEndpoint(t *testing.T) {
	router := setupRouter(t)

	payload := func(email, code string) map[string]any {
		return map[string]any{
			"name":      "Ada Admin",
			"email":     email,
			"phone":     "5551234567",
			"password":  "password123",
			"adminCode": code,
		}
	}

	t.Run("success envelope without credentials", func(t *testing.T) {
		rec, body := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "",
			payload("ada@example.com", "ADMIN123"))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "success", body["status"])

		user, ok := body["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "admin", user["role"])
		assert.NotContains(t, user, "password")
	})

	t.Run("wrong admin code", func(t *testing.T) {
		rec, body := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "",
			payload("bob@example.com", "WRONG"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "error", body["status"])
	})

	t.Run("duplicate email", func(t *testing.T) {
		rec, body := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "",
			payload("ada@example.com", "ADMIN123"))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "error", body["status"])
	})

	t.Run("binding failure", func(t *testing.T) {
		rec, body := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "",
			map[string]any{"email": "not-an-email"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "error", body["status"])
	})
}

func TestLoginEndpoint(t *testing.T) {
	router := setupRouter(t)
	registerAdmin(t, router)

	t.Run("sets the access token cookie", func(t *testing.T) {
		rec, body := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
			"email":    "ada@example.com",
			"password": "password123",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "success", body["status"])

		cookie := rec.Header().Get("Set-Cookie")
		assert.True(t, strings.HasPrefix(cookie, "access_token="), "cookie header: %s", cookie)
		assert.Contains(t, cookie, "HttpOnly")
	})

	t.Run("wrong password", func(t *testing.T) {
		rec, body := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
			"email":    "ada@example.com",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "invalid email or password", body["message"])
	})
}

func TestCurrentUserEndpoint(t *testing.T) {
	router := setupRouter(t)
	token := registerAdmin(t, router)

	t.Run("rejects a missing token", func(t *testing.T) {
		rec, body := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "error", body["status"])
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", "not-a-token", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("returns the caller profile", func(t *testing.T) {
		rec, body := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		user, ok := body["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "ada@example.com", user["email"])
	})
}

func TestRoleGatedAccountEndpoints(t *testing.T) {
	router := setupRouter(t)
	adminToken := registerAdmin(t, router)

	_, architectToken := addUser(t, router, adminToken, "add-architect", "archie@example.com")

	t.Run("architect may not add architects", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/auth/add-architect", architectToken, map[string]any{
			"name":     "Nora North",
			"email":    "nora@example.com",
			"phone":    "5550001111",
			"password": "password123",
		})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("architect adds clients", func(t *testing.T) {
		rec, body := doJSON(t, router, http.MethodPost, "/api/v1/auth/add-client", architectToken, map[string]any{
			"name":     "Carl Client",
			"email":    "carl@example.com",
			"phone":    "5550002222",
			"password": "password123",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		user, ok := body["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "client", user["role"])
	})

	t.Run("admin lists architects", func(t *testing.T) {
		rec, body := doJSON(t, router, http.MethodGet, "/api/v1/auth/architects", adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data, ok := body["data"].([]any)
		require.True(t, ok)
		assert.Len(t, data, 1)
	})
}
