package ports

// Cache persists per-file analyses so unchanged files skip re-extraction on
// the next run. Entries are keyed by project-relative path and validated
// against the file's (mtime, size) pair — a mismatch is treated as a miss.
//
// Crash safety: Put must be transactional. A crash mid-write must not corrupt
// previously committed entries.
type Cache interface {
	// Get returns the cached analysis for relPath when the stored validators
	// match. Returns nil, nil on a miss or a stale entry.
	Get(relPath string, modTime, size int64) (*Analysis, error)

	// Put stores the analysis for relPath along with its validators,
	// overwriting any prior entry.
	Put(relPath string, modTime, size int64, a *Analysis) error

	// Wipe removes all cached entries. Idempotent.
	Wipe() error

	// Close releases the underlying store.
	Close() error
}
