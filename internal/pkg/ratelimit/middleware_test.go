package ratelimit

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_AllowsUnderLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim := New(2, time.Minute)
	r := gin.New()
	r.Use(Middleware(lim, 2))
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)
		r.ServeHTTP(w, req)
		require.Equal(t, 200, w.Code)
	}
}

func TestMiddleware_RateLimitExceeded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim := New(0, time.Minute) // limit 0 -> always deny
	r := gin.New()
	r.Use(Middleware(lim, 0))
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 429, w.Code)
	require.NotEmpty(t, w.Header().Get("Retry-After"))
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Equal(t, "Rate limit exceeded. Try again later.", body["error"])
	require.Equal(t, "RATE_LIMITED", body["code"])
}

func TestLimiter_WindowExpiry(t *testing.T) {
	lim := New(1, 20*time.Millisecond)
	require.True(t, lim.Allow("k"))
	require.False(t, lim.Allow("k"))

	time.Sleep(30 * time.Millisecond)
	require.True(t, lim.Allow("k"))
}
