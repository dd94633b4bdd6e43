package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watcher re-runs a function when watched files change.
type watcher struct {
	fs     *fsnotify.Watcher
	files  map[string]bool
	dirs   map[string]bool
	logger *slog.Logger
}

// newWatcher watches files and every file inside dirs. Files are watched
// through their parent directory since editors replace them on save.
func newWatcher(files, dirs []string, logger *slog.Logger) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	w := &watcher{fs: fsw, files: map[string]bool{}, dirs: map[string]bool{}, logger: logger}

	added := map[string]bool{}
	add := func(dir string) error {
		if added[dir] {
			return nil
		}

		added[dir] = true

		if err := fsw.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}

		return nil
	}

	for _, f := range files {
		f = filepath.Clean(f)
		w.files[f] = true

		if err := add(filepath.Dir(f)); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	for _, d := range dirs {
		d = filepath.Clean(d)
		w.dirs[d] = true

		if err := add(d); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	return w, nil
}

func (w *watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}

	name := filepath.Clean(ev.Name)

	return w.files[name] || w.dirs[filepath.Dir(name)]
}

// loop calls fn after every relevant change until ctx is done. Failures of
// fn are logged and watching goes on.
func (w *watcher) loop(ctx context.Context, fn func() error) error {
	defer w.fs.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}

			if !w.relevant(ev) {
				continue
			}

			w.logger.Info("change detected", slog.String("file", ev.Name))

			if err := fn(); err != nil {
				w.logger.Error("enrichment failed", slog.Any("error", err))
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}

			w.logger.Warn("watch error", slog.Any("error", err))
		}
	}
}
