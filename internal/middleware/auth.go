// ================== internal/middleware/auth.go ==================
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rverma-dev/inkwell/internal/pkg/response"
	"github.com/rverma-dev/inkwell/internal/pkg/token"
)

func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		// Support both "Bearer <token>" (case-insensitive) and raw token in header
		fields := strings.Fields(authHeader)
		var tokenString string
		if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
			tokenString = fields[1]
		} else {
			tokenString = authHeader
		}

		claims, err := token.ValidateToken(tokenString, jwtSecret)
		if err != nil {
			response.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}
