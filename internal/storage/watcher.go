package storage

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow coalesces bursty fsnotify events (write+chmod/rename) into
// a single signal.
const debounceWindow = 200 * time.Millisecond

// Watch signals on the returned channel whenever the storage file changes
// on disk, so the frontend can re-issue a load. It watches the parent
// directory (not the file) so atomic replace sequences (temp+rename) are
// still observed on Linux and Windows; events are filtered by basename and
// debounced. The caller owns ctx: cancel it to stop the goroutine and close
// the watcher cleanly. The channel is closed on exit.
func (g *Gateway) Watch(ctx context.Context) (<-chan struct{}, error) {
	// The directory must exist before it can be watched.
	path, err := g.resolvePath()
	if err != nil {
		return nil, err
	}
	base := filepath.Base(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, ioErr("create watcher", err)
	}

	if err := watcher.Add(g.dataDir); err != nil {
		watcher.Close()
		return nil, ioErr("watch data directory", err)
	}

	changes := make(chan struct{}, 1)

	go func() {
		defer watcher.Close()
		defer close(changes)

		// The debounce timer is drained in this loop only, so a pending
		// timer can never fire after the channel is closed.
		var debounce *time.Timer
		var debounceC <-chan time.Time
		defer func() {
			if debounce != nil {
				debounce.Stop()
			}
		}()
		schedule := func() {
			if debounce == nil {
				debounce = time.NewTimer(debounceWindow)
				debounceC = debounce.C
				return
			}
			if !debounce.Stop() {
				select {
				case <-debounce.C:
				default:
				}
			}
			debounce.Reset(debounceWindow)
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-debounceC:
				select {
				case changes <- struct{}{}:
				default:
				}
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				// Write/Create/Chmod cover normal edits and atomic replace;
				// Remove/Rename means the file was moved, a Create follows.
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Chmod|fsnotify.Remove|fsnotify.Rename) != 0 {
					schedule()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				g.logger.Warnf("watcher error: %v", err)
			}
		}
	}()

	return changes, nil
}
