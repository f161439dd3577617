// ================== internal/features/posts/routes.go ==================
package posts

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rverma-dev/inkwell/internal/config"
	"github.com/rverma-dev/inkwell/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	handler := NewHandler(repo)
	auth := middleware.Auth(cfg.JWTSecret)

	posts := router.Group("/posts")
	{
		posts.GET("/", handler.List)
		posts.GET("/user/:userId", auth, handler.ListByUser)
		posts.GET("/:slug", handler.GetBySlug)

		posts.POST("/", auth, handler.Create)
		posts.PUT("/:id", auth, handler.Update)
		posts.DELETE("/:id", auth, handler.Delete)
	}
}
