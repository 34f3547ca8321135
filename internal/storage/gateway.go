package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/youbo0129ueno-star/Memory-Anki/internal/logger"
)

// FileName is the fixed storage file name inside the data directory.
const FileName = "memory-anki-storage.json"

// Gateway persists the card/deck document as pretty-printed JSON in the
// per-user application data directory. Load and Save are stateless
// single-shot calls; no content is cached between them. A mutex serializes
// in-process callers, cross-process access is unspecified.
type Gateway struct {
	dataDir string
	logger  *logrus.Entry
	mu      sync.Mutex
}

// New creates a gateway rooted at dataDir. The directory is not touched
// here; it is resolved (and created if missing) on every operation.
func New(dataDir string) (*Gateway, error) {
	if dataDir == "" {
		return nil, errors.New("data directory is required")
	}
	return &Gateway{
		dataDir: dataDir,
		logger:  logger.WithComponent("storage"),
	}, nil
}

// resolvePath ensures the data directory exists and returns the storage
// file path. There is no fallback location: a directory that cannot be
// created is fatal to both operations.
func (g *Gateway) resolvePath() (string, error) {
	if err := os.MkdirAll(g.dataDir, 0755); err != nil {
		return "", unavailableErr(fmt.Sprintf("create data directory %s", g.dataDir), err)
	}
	return filepath.Join(g.dataDir, FileName), nil
}

// Load reads the persisted document. A missing file is not an error: it
// yields the default document (null cards, empty decks). Unknown fields in
// the file are ignored.
func (g *Gateway) Load(ctx context.Context) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	path, err := g.resolvePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			g.logger.Debug("no storage file yet, returning default document")
			return DefaultDocument(), nil
		}
		return nil, ioErr("read storage file", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, corruptErr("decode storage file", err)
	}
	doc.ApplyDefaults()

	return &doc, nil
}

// Save replaces the persisted document wholesale with doc, pretty-printed.
// The write goes through a temp file in the same directory followed by a
// rename, so a crash mid-save cannot leave a truncated store.
func (g *Gateway) Save(ctx context.Context, doc *Document) error {
	if doc == nil {
		return unencodableErr("save", errors.New("document is nil"))
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	path, err := g.resolvePath()
	if err != nil {
		return err
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return unencodableErr("marshal document", err)
	}

	return g.writeAtomic(path, payload)
}

// writeAtomic writes payload to path via temp file + rename.
func (g *Gateway) writeAtomic(path string, payload []byte) error {
	tmpFile, err := os.CreateTemp(g.dataDir, FileName+".tmp-")
	if err != nil {
		return ioErr("create temp file", err)
	}
	defer func() {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
	}()

	if _, err := tmpFile.Write(payload); err != nil {
		return ioErr("write temp file", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return ioErr("sync temp file", err)
	}

	if err := tmpFile.Close(); err != nil {
		return ioErr("close temp file", err)
	}

	if err := os.Rename(tmpFile.Name(), path); err != nil {
		return ioErr("replace storage file", err)
	}

	return nil
}
