package themeforge

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = sql.ErrNoRows

// ConversionRun is one recorded converter invocation.
type ConversionRun struct {
	ID          int64
	Input       string
	Output      string
	Target      string // "twig" or "wordpress"
	Assets      int
	Loops       int
	Suggestions int
	Warnings    int
	CreatedAt   string // RFC 3339
}

// Store wraps a SQLite database that logs converter runs so `themeforge
// history` can show what was converted, when, and how much review it needs.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL for concurrent read/write, busy timeout so writers wait instead of
	// failing with SQLITE_BUSY, synchronous=NORMAL is safe under WAL.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS conversions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    input TEXT NOT NULL,
    output TEXT NOT NULL,
    target TEXT NOT NULL,
    assets INTEGER NOT NULL DEFAULT 0,
    loops INTEGER NOT NULL DEFAULT 0,
    suggestions INTEGER NOT NULL DEFAULT 0,
    warnings INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
);
`)
	return err
}

// Record inserts a conversion run. The CreatedAt field is filled if empty.
func (s *Store) Record(run ConversionRun) (int64, error) {
	if run.CreatedAt == "" {
		run.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	res, err := s.db.Exec(
		`INSERT INTO conversions (input, output, target, assets, loops, suggestions, warnings, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Input, run.Output, run.Target, run.Assets, run.Loops, run.Suggestions, run.Warnings, run.CreatedAt,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List returns the most recent runs, newest first. limit <= 0 returns all.
func (s *Store) List(limit int) ([]ConversionRun, error) {
	query := `SELECT id, input, output, target, assets, loops, suggestions, warnings, created_at FROM conversions ORDER BY id DESC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = s.db.Query(query+` LIMIT ?`, limit)
	} else {
		rows, err = s.db.Query(query)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []ConversionRun
	for rows.Next() {
		var r ConversionRun
		if err := rows.Scan(&r.ID, &r.Input, &r.Output, &r.Target, &r.Assets, &r.Loops, &r.Suggestions, &r.Warnings, &r.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Get returns a single run by ID.
func (s *Store) Get(id int64) (ConversionRun, error) {
	var r ConversionRun
	err := s.db.QueryRow(
		`SELECT id, input, output, target, assets, loops, suggestions, warnings, created_at FROM conversions WHERE id = ?`, id,
	).Scan(&r.ID, &r.Input, &r.Output, &r.Target, &r.Assets, &r.Loops, &r.Suggestions, &r.Warnings, &r.CreatedAt)
	if err != nil {
		return ConversionRun{}, err
	}
	return r, nil
}
