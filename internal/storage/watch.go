package storage

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"ringtimer/internal/ui/preferences"

	"github.com/fsnotify/fsnotify"
)

// WatchSettings reloads configPath whenever it changes and passes the result to onChange.
// The parent directory is watched so editors that replace the file are picked up.
// It blocks until ctx is done.
func WatchSettings(ctx context.Context, configPath string, logger *slog.Logger, onChange func(preferences.Settings)) error {
	if logger == nil {
		logger = slog.Default()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create settings watcher: %w", err)
	}
	defer watcher.Close()

	cleanPath := filepath.Clean(configPath)
	if err := watcher.Add(filepath.Dir(cleanPath)); err != nil {
		return fmt.Errorf("watch settings directory: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != cleanPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			settings, err := LoadSettingsFile(cleanPath)
			if err != nil {
				logger.Warn("reload settings", "path", cleanPath, "error", err)
				continue
			}
			onChange(settings)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("settings watcher", "error", err)
		}
	}
}
