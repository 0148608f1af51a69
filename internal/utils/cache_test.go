package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAndStat(t *testing.T, path, content string, mtime time.Time) os.FileInfo {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	info, err := os.Stat(path)
	require.NoError(t, err)
	return info
}

func TestFileCache_HitAndInvalidate(t *testing.T) {
	cache, err := NewFileCache[string](4)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "a.js")
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	info := writeAndStat(t, path, "one", base)

	_, ok := cache.Get(path, info)
	assert.False(t, ok)

	cache.Set(path, info, "parsed-one")
	got, ok := cache.Get(path, info)
	require.True(t, ok)
	assert.Equal(t, "parsed-one", got)

	changed := writeAndStat(t, path, "one plus more", base.Add(time.Minute))
	_, ok = cache.Get(path, changed)
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestFileCache_Bounded(t *testing.T) {
	cache, err := NewFileCache[int](2)
	require.NoError(t, err)

	dir := t.TempDir()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var infos []os.FileInfo
	var paths []string
	for i, name := range []string{"a", "b", "c"} {
		path := filepath.Join(dir, name)
		info := writeAndStat(t, path, name, base)
		cache.Set(path, info, i)
		infos = append(infos, info)
		paths = append(paths, path)
	}

	assert.Equal(t, 2, cache.Len())
	_, ok := cache.Get(paths[0], infos[0])
	assert.False(t, ok, "oldest entry should be evicted")

	cache.Purge()
	assert.Equal(t, 0, cache.Len())
}

func TestNewFileCache_DefaultSize(t *testing.T) {
	cache, err := NewFileCache[int](0)
	require.NoError(t, err)
	assert.NotNil(t, cache)
}
