package controller

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/youbo0129ueno-star/Memory-Anki/internal/config"
	"github.com/youbo0129ueno-star/Memory-Anki/internal/storage"
)

// ConfigurationResponse represents the configuration response structure for the API.
type ConfigurationResponse struct {
	StorageDir   string `json:"storageDir"`
	StorageFile  string `json:"storageFile"`
	WatchEnabled bool   `json:"watchEnabled"`
}

// ConfigurationController handles configuration-related API endpoints.
type ConfigurationController struct {
	config *config.Config
}

// NewConfigurationController creates a new ConfigurationController.
func NewConfigurationController(cfg *config.Config) *ConfigurationController {
	return &ConfigurationController{
		config: cfg,
	}
}

// GetConfiguration returns the application configuration for the frontend.
func (cc *ConfigurationController) GetConfiguration(c *gin.Context) {
	response := ConfigurationResponse{
		StorageDir:   cc.config.Storage.Dir,
		StorageFile:  filepath.Join(cc.config.Storage.Dir, storage.FileName),
		WatchEnabled: cc.config.Storage.WatchEnabled,
	}
	c.JSON(http.StatusOK, response)
}
