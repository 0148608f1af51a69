package utils

import (
	"os"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds a FileCache created with a non-positive size.
const DefaultCacheSize = 512

// CacheItem represents a cached item with metadata for invalidation
type CacheItem[T any] struct {
	Value   T
	ModTime time.Time
	Size    int64
}

// FileCache is a bounded cache of values derived from files. An entry is
// only served while the file's size and modification time are unchanged.
// It is safe for concurrent use.
type FileCache[V any] struct {
	items *lru.Cache[string, CacheItem[V]]
}

// NewFileCache creates a cache holding at most size entries
func NewFileCache[V any](size int) (*FileCache[V], error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	items, err := lru.New[string, CacheItem[V]](size)
	if err != nil {
		return nil, err
	}
	return &FileCache[V]{items: items}, nil
}

// Get returns the value cached for path when info still matches the file
// it was derived from. Stale entries are evicted.
func (c *FileCache[V]) Get(path string, info os.FileInfo) (V, bool) {
	var zero V
	item, ok := c.items.Get(path)
	if !ok {
		return zero, false
	}
	if !item.ModTime.Equal(info.ModTime()) || item.Size != info.Size() {
		c.items.Remove(path)
		return zero, false
	}
	return item.Value, true
}

// Set stores a value for path along with the file metadata it was derived from
func (c *FileCache[V]) Set(path string, info os.FileInfo, value V) {
	c.items.Add(path, CacheItem[V]{
		Value:   value,
		ModTime: info.ModTime(),
		Size:    info.Size(),
	})
}

// Len returns the number of cached entries
func (c *FileCache[V]) Len() int {
	return c.items.Len()
}

// Purge removes every entry
func (c *FileCache[V]) Purge() {
	c.items.Purge()
}
