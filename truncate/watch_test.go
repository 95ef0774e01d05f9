package truncate

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "truncate.yaml")
	require.NoError(t, os.WriteFile(path, []byte("length: 10\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := WatchConfig(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("length: 42\nsuffix: \"…\"\n"), 0o644))

	// A single write may surface as several events; wait for the final content.
	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg, ok := <-ch:
			require.True(t, ok, "channel closed early")
			if cfg.Length != 42 {
				continue
			}
			assert.Equal(t, "…", cfg.Suffix)
			cancel()
			for range ch {
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for config reload")
		}
	}
}

func TestWatchConfig_MissingDirectory(t *testing.T) {
	_, err := WatchConfig(context.Background(), filepath.Join(t.TempDir(), "nope", "truncate.yaml"))
	require.Error(t, err)
}
