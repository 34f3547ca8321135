package route

import (
	"github.com/gin-gonic/gin"

	"github.com/youbo0129ueno-star/Memory-Anki/internal/api/controller"
	"github.com/youbo0129ueno-star/Memory-Anki/internal/notify"
)

// NewEventsRouter sets up the change-notification stream. No request
// timeout here: the SSE connection is long-lived.
func NewEventsRouter(group *gin.RouterGroup, hub *notify.Hub) {
	ec := controller.NewEventsController(hub)

	group.GET("storage/events", ec.Stream)
}
