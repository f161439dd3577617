// ================== internal/features/tasks/routes.go ==================
package tasks

import (
	"github.com/gin-gonic/gin"

	"github.com/rverma-dev/inkwell/internal/config"
	"github.com/rverma-dev/inkwell/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, store *Store, cfg *config.Config) {
	handler := NewHandler(store)

	tasks := router.Group("/tasks")
	tasks.Use(middleware.Auth(cfg.JWTSecret)) // All task routes require authentication
	{
		tasks.GET("/", handler.List)
		tasks.GET("/stats", handler.Stats)
		tasks.GET("/:id", handler.Get)
		tasks.POST("/", handler.Create)
		tasks.PUT("/:id", handler.Update)
		tasks.DELETE("/:id", handler.Delete)
	}
}
