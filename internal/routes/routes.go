package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rverma-dev/inkwell/internal/config"
	"github.com/rverma-dev/inkwell/internal/features/auth"
	"github.com/rverma-dev/inkwell/internal/features/posts"
	"github.com/rverma-dev/inkwell/internal/features/tasks"
)

// SetupRoutes registers all feature routes on the /api/v1 group. The task
// store lives for the lifetime of the process and is created here so tests
// can wire their own.
func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	api := router.Group("/api/v1")

	taskStore := tasks.NewStore()

	auth.RegisterRoutes(api, db, cfg)
	posts.RegisterRoutes(api, db, cfg)
	tasks.RegisterRoutes(api, taskStore, cfg)
}
