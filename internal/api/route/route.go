package route

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youbo0129ueno-star/Memory-Anki/internal/app"
)

// SetupRoutes registers all API routes on the engine.
func SetupRoutes(r *gin.Engine, appCtx *app.App) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "UP",
		})
	})

	publicRouter := r.Group("")

	timeout := appCtx.Config.Server.RequestTimeout

	NewStorageRouter(timeout, publicRouter, appCtx.Store)
	NewConfigurationRouter(timeout, publicRouter, appCtx.Config)
	NewEventsRouter(publicRouter, appCtx.Hub)
}
