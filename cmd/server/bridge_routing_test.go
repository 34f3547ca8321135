package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	appctx "github.com/youbo0129ueno-star/Memory-Anki/internal/app"
	"github.com/youbo0129ueno-star/Memory-Anki/internal/config"
	"github.com/youbo0129ueno-star/Memory-Anki/internal/notify"
	"github.com/youbo0129ueno-star/Memory-Anki/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestApp(t *testing.T) *appctx.App {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Host:               "127.0.0.1",
			Port:               0,
			RequestTimeout:     5 * time.Second,
			CORSAllowedOrigins: "*",
		},
		Storage: config.StorageConfig{
			Dir:          filepath.Join(t.TempDir(), "memory-anki"),
			WatchEnabled: false,
		},
		Misc: config.MiscConfig{LogLevel: "error", GinMode: "test"},
	}

	gateway, err := storage.New(cfg.Storage.Dir)
	if err != nil {
		t.Fatalf("cannot init gateway: %v", err)
	}

	app, err := appctx.New(cfg, gateway, notify.NewHub())
	if err != nil {
		t.Fatalf("cannot init app: %v", err)
	}
	t.Cleanup(app.Shutdown)
	return app
}

func TestRouting_Health(t *testing.T) {
	r := newRouter(newTestApp(t))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "UP") {
		t.Errorf("unexpected health body: %s", w.Body.String())
	}
}

func TestRouting_StorageRoundTrip(t *testing.T) {
	r := newRouter(newTestApp(t))

	// First load: never saved, default document.
	req := httptest.NewRequest(http.MethodGet, "/storage", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != `{"cards":null,"decks":[]}` {
		t.Errorf("unexpected default document: %s", body)
	}

	// Save a document.
	payload := `{"cards": {"1": {"front": "hola", "back": "hello"}}, "decks": ["Spanish"]}`
	req = httptest.NewRequest(http.MethodPut, "/storage", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d: %s", w.Code, w.Body.String())
	}

	// Load it back.
	req = httptest.NewRequest(http.MethodGet, "/storage", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var doc storage.Document
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("failed to unmarshal document: %v", err)
	}
	if len(doc.Decks) != 1 || doc.Decks[0] != "Spanish" {
		t.Errorf("unexpected decks: %#v", doc.Decks)
	}

	var cards map[string]map[string]string
	if err := json.Unmarshal(doc.Cards, &cards); err != nil {
		t.Fatalf("failed to unmarshal cards: %v", err)
	}
	if cards["1"]["front"] != "hola" || cards["1"]["back"] != "hello" {
		t.Errorf("unexpected cards: %v", cards)
	}
}

func TestRouting_Configuration(t *testing.T) {
	app := newTestApp(t)
	r := newRouter(app)

	req := httptest.NewRequest(http.MethodGet, "/configuration", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), app.Config.Storage.Dir) {
		t.Errorf("expected configuration to include storage dir: %s", w.Body.String())
	}
}

func TestRouting_UnknownRoute(t *testing.T) {
	r := newRouter(newTestApp(t))

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}
