package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youbo0129ueno-star/Memory-Anki/internal/logger"
	"github.com/youbo0129ueno-star/Memory-Anki/internal/storage"
)

// StorageController handles the two persistence endpoints the frontend
// drives: load and save of the whole card/deck document.
type StorageController struct {
	store storage.Store
}

// NewStorageController creates a new StorageController backed by the given store.
func NewStorageController(store storage.Store) *StorageController {
	return &StorageController{store: store}
}

// savePayload mirrors storage.Document but keeps the raw fields so missing
// and present-but-null can be told apart. Save requires the full state,
// not a delta.
type savePayload struct {
	Cards json.RawMessage `json:"cards"`
	Decks []string        `json:"decks"`
}

// Load handles GET /storage - returns the persisted document, or the
// default one when nothing was ever saved.
func (sc *StorageController) Load(c *gin.Context) {
	logger.WithComponent("storage-controller").Debug("GET /storage handler called")

	doc, err := sc.store.Load(c.Request.Context())
	if err != nil {
		sc.fail(c, "load", err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Save handles PUT /storage - replaces the persisted document wholesale.
func (sc *StorageController) Save(c *gin.Context) {
	logger.WithComponent("storage-controller").Debug("PUT /storage handler called")

	var payload savePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if payload.Cards == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cards is required"})
		return
	}
	if payload.Decks == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "decks is required"})
		return
	}

	doc := &storage.Document{Cards: payload.Cards, Decks: payload.Decks}
	if err := sc.store.Save(c.Request.Context(), doc); err != nil {
		sc.fail(c, "save", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// statusClientClosedRequest is the nginx convention for a client that went
// away before the response was written.
const statusClientClosedRequest = 499

// fail maps a gateway failure onto an HTTP response.
func (sc *StorageController) fail(c *gin.Context, op string, err error) {
	log := logger.WithComponent("storage-controller")

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// Not a storage failure: the request context ended first.
		log.Debugf("%s: request context ended: %v", op, err)
		c.AbortWithStatus(statusClientClosedRequest)
	case storage.IsUnavailable(err):
		log.Errorf("%s: storage unavailable: %v", op, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable"})
	case storage.IsCorrupt(err):
		log.Errorf("%s: storage file corrupted: %v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage file corrupted"})
	case storage.IsUnencodable(err):
		log.Errorf("%s: document not encodable: %v", op, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "document not encodable"})
	default:
		log.Errorf("%s: storage error: %v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
	}
}
