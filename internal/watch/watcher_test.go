package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitChange(t *testing.T, w *Watcher) string {
	t.Helper()
	select {
	case dir, ok := <-w.Changes():
		require.True(t, ok, "Changes channel closed unexpectedly")
		return dir
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for change notification")
		return ""
	}
}

func TestWatcherReportsChanges(t *testing.T) {
	tempDir := t.TempDir()

	w, err := New(50 * time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Follow(tempDir))
	assert.Equal(t, tempDir, w.Directory())

	// Several quick events collapse into one notification
	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, name), []byte("x"), 0644))
	}
	assert.Equal(t, tempDir, waitChange(t, w))

	select {
	case dir := <-w.Changes():
		// A slow filesystem can split the burst; it must still be the same directory.
		assert.Equal(t, tempDir, dir)
	case <-time.After(300 * time.Millisecond):
	}

	require.NoError(t, os.Remove(filepath.Join(tempDir, "a.txt")))
	assert.Equal(t, tempDir, waitChange(t, w))
}

func TestWatcherFollow(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	w, err := New(0)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Follow(first))
	require.NoError(t, w.Follow(second))
	assert.Equal(t, second, w.Directory())

	require.NoError(t, os.WriteFile(filepath.Join(first, "ignored.txt"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(second, "seen.txt"), nil, 0644))
	assert.Equal(t, second, waitChange(t, w))

}

func TestWatcherFollowErrors(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	w, err := New(0)
	require.NoError(t, err)

	assert.Error(t, w.Follow(filepath.Join(dir, "missing")))
	assert.Error(t, w.Follow(file))

	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "Close is idempotent")
	assert.Error(t, w.Follow(dir))

	select {
	case _, ok := <-w.Changes():
		assert.False(t, ok, "Changes should be closed after Close")
	case <-time.After(time.Second):
		t.Error("Timeout waiting for Changes to close")
	}
}
