package commands

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
	"git.home.luguber.info/inful/blogbuilder/internal/site"
)

// WatchCmd implements the 'watch' command: rebuild whenever the content set
// or the configuration file changes. Unlike 'build', a failing rebuild does
// not exit; the error is logged and the watcher waits for the next change.
type WatchCmd struct {
	Debounce time.Duration `help:"Quiet period before a rebuild after a change" default:"500ms"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := RunBuild(cfg); err != nil {
		slog.Error("Initial build failed", logfields.Error(err))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := addRecursive(watcher, cfg.Content.Dir); err != nil {
		return err
	}
	// Watch the config file's directory; editors often replace the file
	// rather than writing in place.
	if err := watcher.Add(filepath.Dir(root.Config)); err != nil {
		return fmt.Errorf("watch config directory: %w", err)
	}

	slog.Info("Watching for changes", logfields.Path(cfg.Content.Dir))

	var debounce *time.Timer
	rebuild := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Shutdown signal received, stopping watch")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("Change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))

			// New subdirectories must be watched too.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = addRecursive(watcher, event.Name)
				}
			}

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(w.Debounce, func() {
				select {
				case rebuild <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))

		case <-rebuild:
			// Reload config so base URL or output changes take effect.
			fresh, err := config.Load(root.Config)
			if err != nil {
				slog.Error("Config reload failed, keeping previous configuration", logfields.Error(err))
				fresh = cfg
			} else {
				cfg = fresh
			}
			if _, err := site.NewGenerator(fresh).Build(); err != nil {
				slog.Error("Rebuild failed", logfields.Error(err))
			}
		}
	}
}

func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}
