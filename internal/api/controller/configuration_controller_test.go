package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/youbo0129ueno-star/Memory-Anki/internal/config"
	"github.com/youbo0129ueno-star/Memory-Anki/internal/storage"
)

func TestConfigurationController_GetConfiguration(t *testing.T) {
	cfg := &config.Config{
		Storage: config.StorageConfig{
			Dir:          "/home/user/.config/memory-anki",
			WatchEnabled: true,
		},
	}

	cc := NewConfigurationController(cfg)
	r := gin.New()
	r.GET("/configuration", cc.GetConfiguration)

	req := httptest.NewRequest(http.MethodGet, "/configuration", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp ConfigurationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.StorageDir != cfg.Storage.Dir {
		t.Errorf("unexpected storage dir: %s", resp.StorageDir)
	}
	if resp.StorageFile != filepath.Join(cfg.Storage.Dir, storage.FileName) {
		t.Errorf("unexpected storage file: %s", resp.StorageFile)
	}
	if !resp.WatchEnabled {
		t.Error("expected watchEnabled true")
	}
}
