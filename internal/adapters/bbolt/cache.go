// Package bbolt implements the ports.Cache interface using bbolt (embedded
// B+ tree). One bucket maps project-relative paths to JSON-encoded entries of
// {mtime, size, analysis}. Writes are transactional — a crash mid-write cannot
// corrupt previously committed entries.
package bbolt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/corey/codemap/internal/ports"
	bolt "go.etcd.io/bbolt"
)

var bucketAnalyses = []byte("analyses")

// entry is the stored form of one cached analysis. ModTime and Size are the
// validators: the entry is stale when either differs from the file on disk.
type entry struct {
	ModTime  int64           `json:"mtime"`
	Size     int64           `json:"size"`
	Analysis *ports.Analysis `json:"analysis"`
}

// Cache implements ports.Cache backed by bbolt.
type Cache struct {
	db *bolt.DB
}

// NewCache opens (or creates) a bbolt database at the given path.
func NewCache(path string) (*Cache, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close closes the underlying bbolt database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached analysis for relPath when the stored (mtime, size)
// pair matches. Returns nil, nil on a miss or a stale entry.
func (c *Cache) Get(relPath string, modTime, size int64) (*ports.Analysis, error) {
	var data []byte
	err := c.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketAnalyses)
		if b == nil {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := b.Get([]byte(relPath)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("unmarshal entry: %w", err)
	}
	if e.ModTime != modTime || e.Size != size {
		return nil, nil
	}
	return e.Analysis, nil
}

// Put stores the analysis for relPath, overwriting any prior entry.
func (c *Cache) Put(relPath string, modTime, size int64, a *ports.Analysis) error {
	if a == nil {
		return fmt.Errorf("nil analysis")
	}
	data, err := json.Marshal(entry{ModTime: modTime, Size: size, Analysis: a})
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketAnalyses)
		if err != nil {
			return err
		}
		return b.Put([]byte(relPath), data)
	})
}

// Wipe removes all cached entries. Idempotent.
func (c *Cache) Wipe() error {
	return c.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketAnalyses) == nil {
			return nil
		}
		return tx.DeleteBucket(bucketAnalyses)
	})
}
