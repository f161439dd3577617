package ratelimit

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rverma-dev/inkwell/internal/pkg/response"
)

// Middleware creates a rate limiting middleware for Gin keyed by client IP.
func Middleware(limiter *RateLimiter, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		allowed := limiter.Allow(key)
		remaining := limiter.Remaining(key)
		resetTime := limiter.ResetTime(key)

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetTime.Format(time.RFC3339))

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(time.Until(resetTime).Seconds())+1))
			response.TooManyRequests(c, "Rate limit exceeded. Try again later.", "RATE_LIMITED")
			c.Abort()
			return
		}

		c.Next()
	}
}
