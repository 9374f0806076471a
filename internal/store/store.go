// Package store persists parse results in a SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/f3rmion/nameparts/internal/nameparts"
	_ "modernc.org/sqlite"
)

// ErrClosed is returned when the store is used after Close.
var ErrClosed = errors.New("store is closed")

const schema = `
CREATE TABLE IF NOT EXISTS names (
	id                 INTEGER PRIMARY KEY AUTOINCREMENT,
	input              TEXT NOT NULL,
	salutation         TEXT NOT NULL DEFAULT '',
	first_name         TEXT NOT NULL DEFAULT '',
	initials           TEXT NOT NULL DEFAULT '',
	last_name          TEXT NOT NULL DEFAULT '',
	last_name_base     TEXT NOT NULL DEFAULT '',
	last_name_compound TEXT NOT NULL DEFAULT '',
	suffix             TEXT NOT NULL DEFAULT '',
	nickname           TEXT NOT NULL DEFAULT '',
	created_at         INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS names_last_name ON names (last_name_base COLLATE NOCASE);
`

const insertSQL = `
	INSERT INTO names (input, salutation, first_name, initials, last_name,
		last_name_base, last_name_compound, suffix, nickname, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const selectColumns = `
	SELECT id, input, salutation, first_name, initials, last_name,
		last_name_base, last_name_compound, suffix, nickname, created_at
	FROM names
`

// Entry is a stored parse result.
type Entry struct {
	ID        int64
	CreatedAt time.Time
	nameparts.Result
}

// Store wraps a SQLite database of parse results.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the database at path and ensures the schema exists.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// SQLite serializes writers; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return ErrClosed
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Save stores a single result and returns its ID.
func (s *Store) Save(ctx context.Context, r nameparts.Result) (int64, error) {
	if s.db == nil {
		return 0, ErrClosed
	}
	res, err := s.db.ExecContext(ctx, insertSQL, args(r, s.now())...)
	if err != nil {
		return 0, fmt.Errorf("inserting %q: %w", r.Input, err)
	}
	return res.LastInsertId()
}

// SaveAll stores results in one transaction.
func (s *Store) SaveAll(ctx context.Context, results []nameparts.Result) error {
	if s.db == nil {
		return ErrClosed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	now := s.now()
	for _, r := range results {
		if _, err := stmt.ExecContext(ctx, args(r, now)...); err != nil {
			return fmt.Errorf("inserting %q: %w", r.Input, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first. limit <= 0 returns all.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	query := selectColumns + ` ORDER BY id DESC`
	var queryArgs []any
	if limit > 0 {
		query += ` LIMIT ?`
		queryArgs = append(queryArgs, limit)
	}
	return s.query(ctx, query, queryArgs...)
}

// FindByLastName returns entries whose surname base matches, ignoring case.
func (s *Store) FindByLastName(ctx context.Context, lastName string) ([]Entry, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	return s.query(ctx, selectColumns+` WHERE last_name_base = ? COLLATE NOCASE ORDER BY id`, lastName)
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, ErrClosed
	}
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM names`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting names: %w", err)
	}
	return n, nil
}

func (s *Store) query(ctx context.Context, query string, queryArgs ...any) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, query, queryArgs...)
	if err != nil {
		return nil, fmt.Errorf("querying names: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var created int64
		rec := &e.Record
		if err := rows.Scan(
			&e.ID, &e.Input, &rec.Salutation, &rec.FirstName, &rec.Initials, &rec.LastName,
			&rec.LastNameBase, &rec.LastNameCompound, &rec.Suffix, &rec.Nickname, &created,
		); err != nil {
			return nil, fmt.Errorf("scanning name: %w", err)
		}
		e.CreatedAt = time.Unix(created, 0).UTC()
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func args(r nameparts.Result, at time.Time) []any {
	rec := r.Record
	return []any{
		r.Input, rec.Salutation, rec.FirstName, rec.Initials, rec.LastName,
		rec.LastNameBase, rec.LastNameCompound, rec.Suffix, rec.Nickname, at.Unix(),
	}
}
