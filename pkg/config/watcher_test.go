package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher(t *testing.T) {
	t.Run("Should report writes to watched files", func(t *testing.T) {
		dir := t.TempDir()
		watched := filepath.Join(dir, "schema.xml")
		other := filepath.Join(dir, "other.xml")
		require.NoError(t, os.WriteFile(watched, []byte("<schemalist/>"), 0o644))

		w, err := NewWatcher()
		require.NoError(t, err)
		defer w.Close()
		require.NoError(t, w.Add(watched))

		changed := make(chan string, 8)
		w.OnChange(func(path string) { changed <- path })

		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()
		done := make(chan error, 1)
		go func() { done <- w.Run(ctx) }()

		require.NoError(t, os.WriteFile(other, []byte("x"), 0o644))
		require.NoError(t, os.WriteFile(watched, []byte("<schemalist></schemalist>"), 0o644))

		select {
		case path := <-changed:
			abs, _ := filepath.Abs(watched)
			assert.Equal(t, abs, path)
		case <-time.After(5 * time.Second):
			t.Fatal("no change reported")
		}

		cancel()
		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(5 * time.Second):
			t.Fatal("watcher did not stop")
		}
	})

	t.Run("Should close more than once", func(t *testing.T) {
		w, err := NewWatcher()
		require.NoError(t, err)
		require.NoError(t, w.Close())
		assert.NoError(t, w.Close())
	})
}
