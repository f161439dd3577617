package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestSuccessAndErrorResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, map[string]string{"foo": "bar"})
	require.Equal(t, 200, w.Code)
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Equal(t, "success", body["status"])
	require.Contains(t, body, "data")

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	Error(c, 400, "bad request", "BAD_REQ")
	require.Equal(t, 400, w.Code)
	var bodyErr map[string]any
	err = json.Unmarshal(w.Body.Bytes(), &bodyErr)
	require.NoError(t, err)
	require.Equal(t, "bad request", bodyErr["error"])
	require.Equal(t, "BAD_REQ", bodyErr["code"])
}

func TestPaginatedResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	items := []map[string]any{{"id": 1}, {"id": 2}}
	Paginated(c, items, map[string]int{"current": 1, "total": 1, "count": 2, "totalTasks": 2})

	require.Equal(t, 200, w.Code)
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Equal(t, "success", body["status"])
	require.Len(t, body["data"], 2)
	meta := body["pagination"].(map[string]any)
	require.Equal(t, float64(1), meta["current"])
	require.Equal(t, float64(2), meta["totalTasks"])
}
