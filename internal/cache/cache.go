// Package cache is a driver-level store of previous check outcomes, keyed by
// source hash. It lets `brio check` answer instantly for unchanged files.
// The inferencer itself stays batch; nothing below the driver reads this.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"time"

	_ "modernc.org/sqlite"
)

// Result is a remembered check outcome.
type Result struct {
	Passed  bool
	Message string
}

type Cache struct {
	db *sql.DB
}

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS check_results (
		source_hash TEXT PRIMARY KEY,
		passed      INTEGER NOT NULL,
		message     TEXT NOT NULL,
		checked_at  INTEGER NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// HashSource returns the cache key for a source text.
func HashSource(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// Get returns the remembered outcome for a source hash, if any.
func (c *Cache) Get(sourceHash string) (Result, bool, error) {
	var result Result
	var passed int
	row := c.db.QueryRow(
		`SELECT passed, message FROM check_results WHERE source_hash = ?`, sourceHash)
	if err := row.Scan(&passed, &result.Message); err != nil {
		if err == sql.ErrNoRows {
			return Result{}, false, nil
		}
		return Result{}, false, err
	}
	result.Passed = passed != 0
	return result, true, nil
}

// Put remembers a check outcome.
func (c *Cache) Put(sourceHash string, result Result) error {
	passed := 0
	if result.Passed {
		passed = 1
	}
	_, err := c.db.Exec(
		`INSERT OR REPLACE INTO check_results (source_hash, passed, message, checked_at)
		 VALUES (?, ?, ?, ?)`,
		sourceHash, passed, result.Message, time.Now().Unix())
	return err
}
