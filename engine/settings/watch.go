package settings

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads path into st whenever the file is written, until ctx is done.
// The parent directory is watched so editors that replace the file on save are picked up.
// A file that fails to parse is logged and the previous settings stay in place.
func (st *Store) Watch(ctx context.Context, path string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("settings watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return fmt.Errorf("settings path %q: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return fmt.Errorf("watch %q: %w", filepath.Dir(abs), err)
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				s, err := Load(abs)
				if err != nil {
					log.Printf("settings reload failed: %v", err)
					continue
				}
				st.Set(s)
				log.Printf("settings reloaded from %s", abs)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("settings watcher: %v", err)
			}
		}
	}()
	return nil
}
