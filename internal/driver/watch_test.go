package driver

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_ReportsChangedSources(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher([]string{dir}, 20*time.Millisecond)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got := make(chan []string, 1)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(changed []string) error {
			got <- changed
			return errStop
		})
	}()

	writeSource(t, dir, "ignored.txt", "x")
	path := writeSource(t, dir, "main.lust", "let a = 1;")

	select {
	case changed := <-got:
		if len(changed) != 1 || changed[0] != path {
			t.Fatalf("changed = %v, want [%s]", changed, path)
		}
	case <-ctx.Done():
		t.Fatal("no change reported")
	}
	if err := <-done; !errors.Is(err, errStop) {
		t.Fatalf("Run = %v, want errStop", err)
	}
}

var errStop = errors.New("stop")

func TestNewWatcher_MissingPath(t *testing.T) {
	if _, err := NewWatcher([]string{filepath.Join(t.TempDir(), "nope")}, 0); err == nil {
		t.Fatal("expected error for missing path")
	}
}
