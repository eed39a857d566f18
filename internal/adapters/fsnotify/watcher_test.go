package fsnotify

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/corey/codemap/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waitForCallback waits up to timeout for the callback channel to receive a value.
func waitForCallback(ch <-chan string, timeout time.Duration) (string, bool) {
	select {
	case v := <-ch:
		return v, true
	case <-time.After(timeout):
		return "", false
	}
}

func TestWatcher_DetectsFileChange(t *testing.T) {
	dir := t.TempDir()
	testFile := filepath.Join(dir, "app.ts")
	require.NoError(t, os.WriteFile(testFile, []byte("// original"), 0644))

	w, err := NewWatcher(config.Default())
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan string, 10)
	require.NoError(t, w.Watch(dir, func(path string) {
		changed <- path
	}))

	// Give watcher time to start
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(testFile, []byte("// modified"), 0644))

	path, ok := waitForCallback(changed, 2*time.Second)
	assert.True(t, ok, "expected callback for file change")
	assert.Equal(t, testFile, path)
}

func TestWatcher_DetectsNewFile(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(config.Default())
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan string, 10)
	require.NoError(t, w.Watch(dir, func(path string) {
		changed <- path
	}))

	time.Sleep(50 * time.Millisecond)

	newFile := filepath.Join(dir, "fresh.py")
	require.NoError(t, os.WriteFile(newFile, []byte("# new"), 0644))

	path, ok := waitForCallback(changed, 2*time.Second)
	assert.True(t, ok, "expected callback for new file")
	assert.Equal(t, newFile, path)
}

func TestWatcher_IgnoresExcludedDir(t *testing.T) {
	dir := t.TempDir()
	deps := filepath.Join(dir, "node_modules")
	require.NoError(t, os.MkdirAll(deps, 0755))

	w, err := NewWatcher(config.Default())
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan string, 10)
	require.NoError(t, w.Watch(dir, func(path string) {
		changed <- path
	}))

	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(deps, "dep.js"), []byte("x"), 0644))

	_, ok := waitForCallback(changed, 300*time.Millisecond)
	assert.False(t, ok, "excluded directory must not trigger callbacks")
}

func TestWatcher_IgnoresExcludedFile(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(config.Default())
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan string, 10)
	require.NoError(t, w.Watch(dir, func(path string) {
		changed <- path
	}))

	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".DS_Store"), []byte("x"), 0644))

	_, ok := waitForCallback(changed, 300*time.Millisecond)
	assert.False(t, ok, "excluded file must not trigger callbacks")
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w, err := NewWatcher(config.Default())
	require.NoError(t, err)

	require.NoError(t, w.Watch(t.TempDir(), func(string) {}))
	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}
