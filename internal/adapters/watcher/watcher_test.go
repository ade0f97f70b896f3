package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkgseg/pkgseg/internal/adapters/watcher"
	"github.com/pkgseg/pkgseg/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReportsWriteToWatchedFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "Project.toml")
	other := filepath.Join(dir, "ignored.txt")
	require.NoError(t, os.WriteFile(target, []byte("name = \"x\"\n"), 0o644))

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, w.Start(ctx, []string{target}))

	received := make(chan ports.WatchEvent, 1)
	go func() {
		for event := range w.Events() {
			received <- event
			return
		}
	}()

	// A write to an unwatched sibling must not produce an event.
	require.NoError(t, os.WriteFile(other, []byte("noise"), 0o644))
	require.NoError(t, os.WriteFile(target, []byte("name = \"y\"\n"), 0o644))

	select {
	case event := <-received:
		assert.Equal(t, target, event.Path)
	case <-time.After(5 * time.Second):
		t.Fatal("no event received for watched file")
	}
}
