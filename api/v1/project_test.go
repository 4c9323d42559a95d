package v1

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProjectLifecycle drives a project through the API the way the
// frontend does: admin provisions accounts, the architect creates and
// manages the project, the client reads it.
func TestProjectLifecycle(t *testing.T) {
	router := setupRouter(t)
	adminToken := registerAdmin(t, router)

	architectID, architectToken := addUser(t, router, adminToken, "add-architect", "archie@example.com")
	clientID, clientToken := addUser(t, router, adminToken, "add-client", "clio@example.com")
	_, outsiderToken := addUser(t, router, adminToken, "add-client", "carl@example.com")

	var projectID string

	t.Run("architect creates a project", func(t *testing.T) {
		rec, body := doJSON(t, router, http.MethodPost, "/api/v1/projects", architectToken, map[string]any{
			"title":       "Harbor House",
			"description": "Two-storey residence by the harbor",
			"clientId":    clientID,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		data, ok := body["data"].(map[string]any)
		require.True(t, ok)
		projectID, ok = data["id"].(string)
		require.True(t, ok)

		architect, ok := data["architect"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, architectID, architect["id"])
		assert.Equal(t, "planning", data["status"])
	})

	t.Run("client may read but not update", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodGet, "/api/v1/projects/"+projectID, clientToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec, _ = doJSON(t, router, http.MethodPut, "/api/v1/projects/"+projectID, clientToken, map[string]any{
			"status": "completed",
		})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("outsider may not read", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodGet, "/api/v1/projects/"+projectID, outsiderToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unknown project maps to 404", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodGet, "/api/v1/projects/no-such-id", architectToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("architect advances status and phase", func(t *testing.T) {
		rec, body := doJSON(t, router, http.MethodPut, "/api/v1/projects/"+projectID, architectToken, map[string]any{
			"status": "in_progress",
			"phase":  "construction",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		data := body["data"].(map[string]any)
		assert.Equal(t, "in_progress", data["status"])
		assert.Equal(t, "construction", data["phase"])
	})

	t.Run("lists are scoped to the caller", func(t *testing.T) {
		rec, body := doJSON(t, router, http.MethodGet, "/api/v1/projects", outsiderToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data := body["data"].(map[string]any)
		assert.Empty(t, data["projects"])

		rec, body = doJSON(t, router, http.MethodGet, "/api/v1/projects", clientToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data = body["data"].(map[string]any)
		assert.Len(t, data["projects"], 1)
	})

	t.Run("requests without a token are rejected", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodGet, "/api/v1/projects", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("architect deletes the project", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodDelete, "/api/v1/projects/"+projectID, architectToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/projects/"+projectID, architectToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

// TestMeetingAndDocumentEndpoints covers the meeting and document
// surfaces end to end on one shared project.
func TestMeetingAndDocumentEndpoints(t *testing.T) {
	router := setupRouter(t)
	adminToken := registerAdmin(t, router)

	_, architectToken := addUser(t, router, adminToken, "add-architect", "archie@example.com")
	clientID, clientToken := addUser(t, router, adminToken, "add-client", "clio@example.com")
	_, outsiderToken := addUser(t, router, adminToken, "add-client", "carl@example.com")

	rec, body := doJSON(t, router, http.MethodPost, "/api/v1/projects", architectToken, map[string]any{
		"title":       "Harbor House",
		"description": "Two-storey residence by the harbor",
		"clientId":    clientID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	projectID := body["data"].(map[string]any)["id"].(string)

	var meetingID string
	t.Run("architect schedules a meeting", func(t *testing.T) {
		rec, body := doJSON(t, router, http.MethodPost, "/api/v1/meetings", architectToken, map[string]any{
			"title":        "Site walkthrough",
			"date":         "2026-09-15T10:00:00Z",
			"projectId":    projectID,
			"participants": []string{clientID},
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		data := body["data"].(map[string]any)
		meetingID = data["id"].(string)
		assert.Equal(t, "scheduled", data["status"])
		assert.Len(t, data["participants"], 2)
	})

	t.Run("participant reads, outsider does not", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodGet, "/api/v1/meetings/"+meetingID, clientToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/meetings/"+meetingID, outsiderToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("only the creator mutates the meeting", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodPut, "/api/v1/meetings/"+meetingID, clientToken, map[string]any{
			"status": "cancelled",
		})
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec, body := doJSON(t, router, http.MethodPut, "/api/v1/meetings/"+meetingID, architectToken, map[string]any{
			"status": "completed",
			"notes":  "Reviewed facade options",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "completed", body["data"].(map[string]any)["status"])
	})

	var documentID string
	t.Run("client uploads a document", func(t *testing.T) {
		rec, body := doJSON(t, router, http.MethodPost, "/api/v1/documents", clientToken, map[string]any{
			"name":      "Signed contract",
			"type":      "contract",
			"fileUrl":   "https://files.example.com/contract-v1.pdf",
			"projectId": projectID,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		data := body["data"].(map[string]any)
		documentID = data["id"].(string)
		assert.Equal(t, float64(1), data["version"])
	})

	t.Run("replacing the file bumps the version", func(t *testing.T) {
		rec, body := doJSON(t, router, http.MethodPut, "/api/v1/documents/"+documentID, clientToken, map[string]any{
			"fileUrl": "https://files.example.com/contract-v2.pdf",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(2), body["data"].(map[string]any)["version"])
	})

	t.Run("version info is exposed separately", func(t *testing.T) {
		rec, body := doJSON(t, router, http.MethodGet, "/api/v1/documents/"+documentID+"/versions", architectToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(2), body["data"].(map[string]any)["version"])
	})

	t.Run("non-uploader may not delete, admin may", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodDelete, "/api/v1/documents/"+documentID, architectToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec, _ = doJSON(t, router, http.MethodDelete, "/api/v1/documents/"+documentID, adminToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
