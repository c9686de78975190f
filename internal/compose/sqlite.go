package compose

import (
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const cacheSchema = `
CREATE TABLE IF NOT EXISTS letter_rewrites (
	fingerprint TEXT PRIMARY KEY,
	line2       TEXT NOT NULL,
	line3       TEXT NOT NULL,
	saved_at    TEXT NOT NULL
);
`

// SQLiteCache is a CacheStore persisted to SQLite, so accepted rewrites
// survive restarts and can be shared between processes on one host.
type SQLiteCache struct {
	db *sqlx.DB
	mu sync.Mutex
}

// NewSQLiteCache opens (or creates) the cache database at path.
func NewSQLiteCache(path string) (*SQLiteCache, error) {
	db, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open rewrite cache: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(cacheSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init rewrite cache schema: %w", err)
	}
	return &SQLiteCache{db: db}, nil
}

func (c *SQLiteCache) Get(fingerprint string) (CachedRewrite, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var row struct {
		Line2   string `db:"line2"`
		Line3   string `db:"line3"`
		SavedAt string `db:"saved_at"`
	}
	err := c.db.Get(&row, `SELECT line2, line3, saved_at FROM letter_rewrites WHERE fingerprint = ?`, fingerprint)
	if err != nil {
		return CachedRewrite{}, false
	}
	savedAt, err := time.Parse(time.RFC3339Nano, row.SavedAt)
	if err != nil {
		return CachedRewrite{}, false
	}
	return CachedRewrite{Line2: row.Line2, Line3: row.Line3, SavedAt: savedAt}, true
}

func (c *SQLiteCache) Set(fingerprint string, rw CachedRewrite) {
	c.mu.Lock()
	defer c.mu.Unlock()
	savedAt := rw.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}
	_, _ = c.db.Exec(
		`INSERT INTO letter_rewrites (fingerprint, line2, line3, saved_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(fingerprint) DO UPDATE SET line2 = excluded.line2, line3 = excluded.line3, saved_at = excluded.saved_at`,
		fingerprint, rw.Line2, rw.Line3, savedAt.UTC().Format(time.RFC3339Nano),
	)
}

func (c *SQLiteCache) PruneOlderThan(age time.Duration) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	cutoff := time.Now().Add(-age).UTC().Format(time.RFC3339Nano)
	res, err := c.db.Exec(`DELETE FROM letter_rewrites WHERE saved_at < ?`, cutoff)
	if err != nil {
		return 0
	}
	n, _ := res.RowsAffected()
	return int(n)
}

// Close releases the underlying database handle.
func (c *SQLiteCache) Close() error { return c.db.Close() }
