package file

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/reunite-labs/reunite/internal/logger"
	"github.com/reunite-labs/reunite/internal/matching"
)

// WatchTables watches a tables file and invokes onChange with the
// re-parsed tables whenever it is written. The watch stops when ctx is
// cancelled. Parse failures keep the previous tables in effect and are
// logged only.
func WatchTables(ctx context.Context, path string, onChange func(*matching.Tables)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	// Watch the directory; editors often replace the file rather than
	// write it in place, which drops a watch on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s: %w", path, err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != path {
					continue
				}
				if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
					continue
				}
				settings := Settings{TablesPath: path}
				tables, err := settings.LoadTables()
				if err != nil {
					logger.Warn("Tables reload failed, keeping previous: %v", err)
					continue
				}
				logger.Info("Tables reloaded from %s", path)
				onChange(tables)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Tables watcher: %v", err)
			}
		}
	}()

	return nil
}
