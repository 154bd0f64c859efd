package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"lust/internal/project"
)

// DefaultDebounce — пауза после последнего события перед перезапуском.
const DefaultDebounce = 150 * time.Millisecond

// Watcher следит за *.lust под набором путей и отдаёт изменения пачками.
type Watcher struct {
	fw       *fsnotify.Watcher
	debounce time.Duration
}

// NewWatcher starts watching every directory under paths.
// Для файла наблюдается его родительский каталог.
func NewWatcher(paths []string, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w := &Watcher{fw: fw, debounce: debounce}
	for _, p := range paths {
		if err := w.addTree(p); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) addTree(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return w.fw.Add(filepath.Dir(root))
	}
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.fw.Add(p); err != nil {
			return fmt.Errorf("failed to watch %q: %w", p, err)
		}
		return nil
	})
}

// Run блокируется до отмены ctx. onChange получает отсортированный список
// изменённых файлов после паузы debounce; ошибка из onChange прерывает Run.
func (w *Watcher) Run(ctx context.Context, onChange func(changed []string) error) error {
	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					// новый каталог — подписываемся и на него
					if err := w.addTree(ev.Name); err != nil {
						return err
					}
					continue
				}
			}
			if filepath.Ext(ev.Name) != project.SourceExt {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			pending[ev.Name] = struct{}{}
			timer.Reset(w.debounce)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			clear(pending)
			slices.Sort(changed)
			if err := onChange(changed); err != nil {
				return err
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				continue
			}
			return fmt.Errorf("watch: %w", err)
		}
	}
}

func (w *Watcher) Close() error {
	return w.fw.Close()
}
