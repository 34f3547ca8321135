package controller

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/youbo0129ueno-star/Memory-Anki/internal/logger"
	"github.com/youbo0129ueno-star/Memory-Anki/internal/notify"
)

// EventsController streams storage-change notifications to the frontend as
// server-sent events. A signal means the file changed on disk outside this
// request (external edit, sync tool); the frontend reacts by re-loading.
type EventsController struct {
	hub *notify.Hub
}

// NewEventsController creates a new EventsController on the given hub.
func NewEventsController(hub *notify.Hub) *EventsController {
	return &EventsController{hub: hub}
}

// Stream handles GET /storage/events. The connection stays open until the
// client goes away.
func (ec *EventsController) Stream(c *gin.Context) {
	log := logger.WithComponent("events-controller")
	log.Debug("SSE client connected")

	ch, cancel := ec.hub.Subscribe()
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	// Flush the headers right away so the client sees the stream open
	// before the first change arrives.
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			log.Debug("SSE client disconnected")
			return false
		case _, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("storage-changed", "reload")
			return true
		}
	})
}
