package truncate

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchConfig reloads the config file at path whenever it is written and
// sends each successfully parsed Config on the returned channel. Files that
// fail to parse are logged and skipped. The channel is closed when ctx is
// done.
func WatchConfig(ctx context.Context, path string) (<-chan Config, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory so editors that replace the file are seen too.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	ch := make(chan Config, 1)
	go func() {
		defer close(ch)
		defer watcher.Close()

		baseName := filepath.Base(path)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != baseName {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				cfg, err := LoadConfig(path)
				if err != nil {
					slog.Warn("skipping invalid truncate config",
						slog.String("path", path),
						slog.String("error", err.Error()))
					continue
				}
				select {
				case ch <- cfg:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("truncate config watcher error",
					slog.String("path", path),
					slog.String("error", err.Error()))
			}
		}
	}()

	return ch, nil
}
