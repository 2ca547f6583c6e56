package navsync

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-runs a Syncer whenever an HTML page under a directory changes.
// Bursts of events are collapsed into one run after a quiet period. Runs
// only write pages whose bytes change, so the watcher's own writes settle
// after a single extra pass.
type Watcher struct {
	fsw      *fsnotify.Watcher
	rootDir  string
	syncer   *Syncer
	debounce time.Duration
	log      *slog.Logger
}

// NewWatcher watches rootDir and every non-hidden directory below it.
func NewWatcher(rootDir string, syncer *Syncer, debounce time.Duration, log *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	w := &Watcher{
		fsw:      fsw,
		rootDir:  rootDir,
		syncer:   syncer,
		debounce: debounce,
		log:      log,
	}
	if err := w.addRecursive(rootDir); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.rootDir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		w.log.Debug("watching directory", "path", path)
		return nil
	})
}

// Run blocks until ctx is done, syncing after each burst of changes.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addRecursive(event.Name); err != nil {
						w.log.Warn("watch new directory failed", "path", event.Name, "error", err)
					}
					continue
				}
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if filepath.Ext(event.Name) != ".html" {
				continue
			}
			w.log.Debug("page changed", "path", event.Name)
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", "error", err)

		case <-timer.C:
			results, err := w.syncer.Run(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				w.log.Error("sync failed", "error", err)
				continue
			}
			sum := Summarize(results)
			w.log.Info("sync complete", "updated", sum.Updated, "unchanged", sum.Unchanged,
				"no_block", sum.NoBlock, "errors", sum.Errors)
		}
	}
}
