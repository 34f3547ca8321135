package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/youbo0129ueno-star/Memory-Anki/internal/api/controller"
	"github.com/youbo0129ueno-star/Memory-Anki/internal/api/middleware"
	"github.com/youbo0129ueno-star/Memory-Anki/internal/storage"
)

// NewStorageRouter sets up the load/save routes.
func NewStorageRouter(timeout time.Duration, group *gin.RouterGroup, store storage.Store) {
	sc := controller.NewStorageController(store)
	timeoutMiddleware := middleware.RequestTimeout(timeout)

	group.GET("storage", timeoutMiddleware, sc.Load)
	group.PUT("storage", timeoutMiddleware, sc.Save)
}
