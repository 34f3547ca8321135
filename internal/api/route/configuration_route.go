package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/youbo0129ueno-star/Memory-Anki/internal/api/controller"
	"github.com/youbo0129ueno-star/Memory-Anki/internal/api/middleware"
	"github.com/youbo0129ueno-star/Memory-Anki/internal/config"
)

// NewConfigurationRouter sets up configuration-related routes.
func NewConfigurationRouter(timeout time.Duration, group *gin.RouterGroup, cfg *config.Config) {
	cc := controller.NewConfigurationController(cfg)
	timeoutMiddleware := middleware.RequestTimeout(timeout)

	group.GET("configuration", timeoutMiddleware, cc.GetConfiguration)
}
