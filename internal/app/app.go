package app

import (
	"context"
	"errors"

	"github.com/youbo0129ueno-star/Memory-Anki/internal/config"
	"github.com/youbo0129ueno-star/Memory-Anki/internal/logger"
	"github.com/youbo0129ueno-star/Memory-Anki/internal/notify"
	"github.com/youbo0129ueno-star/Memory-Anki/internal/storage"
)

// App is the application container (immutable dependencies + lifecycle context).
// It is not a request context; handlers should still use gin's request context.
type App struct {
	Config *config.Config
	Store  storage.Repository
	Hub    *notify.Hub

	BaseCtx context.Context
	Cancel  context.CancelFunc
}

func New(cfg *config.Config, store storage.Repository, hub *notify.Hub) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if store == nil {
		return nil, errors.New("store is nil")
	}
	if hub == nil {
		return nil, errors.New("hub is nil")
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &App{
		Config:  cfg,
		Store:   store,
		Hub:     hub,
		BaseCtx: ctx,
		Cancel:  cancel,
	}, nil
}

func (a *App) Shutdown() {
	if a == nil || a.Cancel == nil {
		return
	}
	a.Cancel()
}

// StartWatchers wires the storage file watcher into the notification hub.
// Signals fan out to connected SSE clients so the frontend can re-load
// after an external change to the storage file.
func (a *App) StartWatchers() error {
	if !a.Config.Storage.WatchEnabled {
		logger.WithComponent("app").Debug("storage watching disabled")
		return nil
	}

	changes, err := a.Store.Watch(a.BaseCtx)
	if err != nil {
		return err
	}

	go func() {
		for range changes {
			logger.WithComponent("app").Debug("storage file changed on disk")
			a.Hub.Publish()
		}
	}()

	return nil
}
