package build

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// BuildCallback receives the result of every build triggered by Watch.
type BuildCallback func(m *Manifest, err error)

// Watch builds once, then rebuilds whenever a file under root changes.
// Events are debounced and changes inside the output directory are ignored.
// It blocks until ctx is cancelled, then returns nil.
func (b *Builder) Watch(ctx context.Context, onBuild BuildCallback) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := b.addWatchDirs(fsw, b.root); err != nil {
		return err
	}

	onBuild(b.Build(ctx))

	rebuildCh := make(chan struct{}, 1)
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Name == b.outDir || isWithin(event.Name, b.outDir) {
				continue
			}
			if b.ignored(event.Name) {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := b.addWatchDirs(fsw, event.Name); err != nil {
						b.logger.Warn("Failed to watch new directory", zap.String("dir", event.Name), zap.Error(err))
					}
				}
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			b.logger.Debug("Source changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(b.debounce, func() {
				select {
				case rebuildCh <- struct{}{}:
				default:
				}
			})

		case <-rebuildCh:
			onBuild(b.Build(ctx))

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			b.logger.Warn("fsnotify error", zap.Error(err))
		}
	}
}

// addWatchDirs registers dir and every non-skipped directory below it.
func (b *Builder) addWatchDirs(fsw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if b.skip(path, d) {
			return filepath.SkipDir
		}
		return fsw.Add(path)
	})
}

// ignored reports whether any path element below root is private or path
// is explicitly excluded.
func (b *Builder) ignored(path string) bool {
	if b.exclude.Has(path) {
		return true
	}
	rel, err := filepath.Rel(b.root, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return false
	}
	return PrivatePath(rel)
}
