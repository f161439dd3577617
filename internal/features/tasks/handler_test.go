package tasks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rverma-dev/inkwell/internal/config"
	"github.com/rverma-dev/inkwell/internal/pkg/token"
)

const testSecret = "test-secret"

func testRouter(t *testing.T, store *Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	cfg := &config.Config{JWTSecret: testSecret, JWTExpireHours: 1}
	RegisterRoutes(api, store, cfg)
	return r
}

func authHeader(t *testing.T, userID string) string {
	t.Helper()
	tok, err := token.GenerateToken(userID, userID+"@example.com", testSecret, 1)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doJSON(t *testing.T, r *gin.Engine, method, path, auth string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTaskRoutes_RequireAuth(t *testing.T) {
	r := testRouter(t, NewStore())

	w := doJSON(t, r, "GET", "/api/v1/tasks/", "", nil)
	assert.Equal(t, 401, w.Code)
}

func TestTaskLifecycle(t *testing.T) {
	r := testRouter(t, NewStore())
	auth := authHeader(t, "u1")

	// Create
	w := doJSON(t, r, "POST", "/api/v1/tasks/", auth, map[string]any{
		"title":    "Write report",
		"priority": "high",
		"category": "work",
	})
	require.Equal(t, 201, w.Code)

	var created struct {
		Data Task `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, StatusTodo, created.Data.Status)
	assert.Equal(t, PriorityHigh, created.Data.Priority)
	assert.Nil(t, created.Data.CompletedAt)
	id := created.Data.ID

	// Complete it: completedAt gets stamped
	w = doJSON(t, r, "PUT", fmt.Sprintf("/api/v1/tasks/%d", id), auth, map[string]any{
		"status": "completed",
	})
	require.Equal(t, 200, w.Code)
	var updated struct {
		Data Task `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.NotNil(t, updated.Data.CompletedAt)

	// Back to todo: completedAt is cleared
	w = doJSON(t, r, "PUT", fmt.Sprintf("/api/v1/tasks/%d", id), auth, map[string]any{
		"status": "todo",
	})
	require.Equal(t, 200, w.Code)
	updated.Data = Task{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Nil(t, updated.Data.CompletedAt)

	// Delete
	w = doJSON(t, r, "DELETE", fmt.Sprintf("/api/v1/tasks/%d", id), auth, nil)
	require.Equal(t, 200, w.Code)

	w = doJSON(t, r, "GET", fmt.Sprintf("/api/v1/tasks/%d", id), auth, nil)
	assert.Equal(t, 404, w.Code)
}

func TestTaskOwnershipHidesForeignTasks(t *testing.T) {
	store := NewStore()
	r := testRouter(t, store)

	task := store.Create(Task{UserID: "owner", Title: "private", Status: StatusTodo, Priority: PriorityMedium})

	w := doJSON(t, r, "GET", fmt.Sprintf("/api/v1/tasks/%d", task.ID), authHeader(t, "intruder"), nil)
	assert.Equal(t, 404, w.Code)

	w = doJSON(t, r, "DELETE", fmt.Sprintf("/api/v1/tasks/%d", task.ID), authHeader(t, "intruder"), nil)
	assert.Equal(t, 404, w.Code)

	// Still there for the owner
	w = doJSON(t, r, "GET", fmt.Sprintf("/api/v1/tasks/%d", task.ID), authHeader(t, "owner"), nil)
	assert.Equal(t, 200, w.Code)
}

func TestTaskList_FilterSortPaginate(t *testing.T) {
	store := NewStore()
	r := testRouter(t, store)
	auth := authHeader(t, "u1")

	priorities := []string{PriorityLow, PriorityHigh, PriorityMedium}
	for i := 0; i < 3; i++ {
		store.Create(Task{UserID: "u1", Title: fmt.Sprintf("t%d", i), Status: StatusTodo, Priority: priorities[i]})
	}
	store.Create(Task{UserID: "u2", Title: "foreign", Status: StatusTodo, Priority: PriorityHigh})

	w := doJSON(t, r, "GET", "/api/v1/tasks/?sortBy=priority&sortOrder=desc&page=1&limit=2", auth, nil)
	require.Equal(t, 200, w.Code)

	var body struct {
		Data       []Task     `json:"data"`
		Pagination Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, PriorityHigh, body.Data[0].Priority)
	assert.Equal(t, PriorityMedium, body.Data[1].Priority)
	assert.Equal(t, 2, body.Pagination.Total)
	assert.Equal(t, 3, body.Pagination.TotalTasks)
}

func TestTaskStats_Endpoint(t *testing.T) {
	store := NewStore()
	r := testRouter(t, store)
	auth := authHeader(t, "u1")

	store.Create(Task{UserID: "u1", Status: StatusCompleted, Priority: PriorityLow})
	store.Create(Task{UserID: "u1", Status: StatusTodo, Priority: PriorityHigh})

	w := doJSON(t, r, "GET", "/api/v1/tasks/stats", auth, nil)
	require.Equal(t, 200, w.Code)

	var body struct {
		Data Stats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Data.Total)
	assert.Equal(t, 1, body.Data.Completed)
	assert.Equal(t, 50, body.Data.CompletionRate)
	assert.Equal(t, 1, body.Data.HighPriority)
}

func TestTaskCreate_RejectsInvalidEnum(t *testing.T) {
	r := testRouter(t, NewStore())
	auth := authHeader(t, "u1")

	w := doJSON(t, r, "POST", "/api/v1/tasks/", auth, map[string]any{
		"title":  "x",
		"status": "archived",
	})
	assert.Equal(t, 422, w.Code)
}
