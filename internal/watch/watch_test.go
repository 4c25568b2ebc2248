package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/sboard/internal/logging"
	"github.com/aretw0/sboard/internal/watch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.sboard")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := watch.File(ctx, path, 20*time.Millisecond, logging.NewNop())
	require.NoError(t, err)

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("v2"), 0644))

	select {
	case got := <-ch:
		abs, _ := filepath.Abs(path)
		assert.Equal(t, abs, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	for range ch {
	}
}

func TestFile_MissingDirectory(t *testing.T) {
	_, err := watch.File(context.Background(), filepath.Join(t.TempDir(), "nope", "board.sboard"), 0, nil)
	assert.Error(t, err)
}
