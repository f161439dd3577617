// ================== internal/features/auth/routes.go ==================
package auth

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rverma-dev/inkwell/internal/config"
	"github.com/rverma-dev/inkwell/internal/middleware"
	"github.com/rverma-dev/inkwell/internal/pkg/ratelimit"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	handler := NewHandler(repo, cfg)

	// Throttle credential endpoints against brute forcing
	loginLimiter := ratelimit.New(10, time.Minute)
	loginLimiter.StartCleanup(5 * time.Minute)

	auth := router.Group("/auth")
	{
		auth.POST("/register", ratelimit.Middleware(loginLimiter, 10), handler.Register)
		auth.POST("/login", ratelimit.Middleware(loginLimiter, 10), handler.Login)

		auth.GET("/me", middleware.Auth(cfg.JWTSecret), handler.GetMe)
		auth.PUT("/profile", middleware.Auth(cfg.JWTSecret), handler.UpdateProfile)
	}
}
