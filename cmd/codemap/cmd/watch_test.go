package cmd

import (
	"path/filepath"
	"testing"

	"github.com/corey/codemap/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchHasOwnNoCacheFlag(t *testing.T) {
	f := watchCmd.Flags().Lookup("no-cache")
	require.NotNil(t, f)

	// watch's flag is independent of map's.
	require.NoError(t, watchCmd.Flags().Set("no-cache", "true"))
	assert.True(t, watchNoCache)
	assert.False(t, mapNoCache)
	require.NoError(t, watchCmd.Flags().Set("no-cache", "false"))
}

func TestOpenCacheDisabled(t *testing.T) {
	paths := app.NewPaths(filepath.Join(t.TempDir(), "proj"))
	assert.Nil(t, openCache(paths, true))
}
