// Package analytics provides privacy-first page view counting. No IPs,
// cookies, or visitor identifiers are stored: views are aggregated per
// day and path.
package analytics

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const dayFormat = "2006-01-02"

// Store persists daily page-view counts in SQLite.
type Store struct {
	db *sql.DB
}

// PathCount is one row of a top-paths report.
type PathCount struct {
	Path  string
	Count int64
}

// NewStore opens (or creates) the analytics database at path.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}
	// WAL lets the request-path writer coexist with report readers, and a
	// busy timeout makes concurrent writers wait instead of failing.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, fmt.Errorf("configure analytics db: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("ensure analytics schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS page_views (
    day TEXT NOT NULL,
    path TEXT NOT NULL,
    count INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (day, path)
);
`)
	return err
}

// RecordView increments today's counter for path.
func (s *Store) RecordView(path string) error {
	day := time.Now().UTC().Format(dayFormat)
	_, err := s.db.Exec(`
INSERT INTO page_views (day, path, count) VALUES (?, ?, 1)
ON CONFLICT(day, path) DO UPDATE SET count = count + 1`, day, path)
	return err
}

// ViewCount returns the total views for path between from and to, inclusive.
func (s *Store) ViewCount(path string, from, to time.Time) (int64, error) {
	var total sql.NullInt64
	err := s.db.QueryRow(`
SELECT SUM(count) FROM page_views WHERE path = ? AND day >= ? AND day <= ?`,
		path, from.UTC().Format(dayFormat), to.UTC().Format(dayFormat)).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total.Int64, nil
}

// TopPaths returns the most viewed paths between from and to, inclusive.
func (s *Store) TopPaths(from, to time.Time, limit int) ([]PathCount, error) {
	rows, err := s.db.Query(`
SELECT path, SUM(count) AS total FROM page_views
WHERE day >= ? AND day <= ?
GROUP BY path ORDER BY total DESC LIMIT ?`,
		from.UTC().Format(dayFormat), to.UTC().Format(dayFormat), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []PathCount
	for rows.Next() {
		var pc PathCount
		if err := rows.Scan(&pc.Path, &pc.Count); err != nil {
			return nil, err
		}
		result = append(result, pc)
	}
	return result, rows.Err()
}
