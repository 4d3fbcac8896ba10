package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rawal21/stayfinder/internal/storage"
	_ "modernc.org/sqlite"
)

// ensure sqliteStore implements storage.Store
var _ storage.Store = (*sqliteStore)(nil)

type sqliteStore struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS destination_codes (
	location TEXT PRIMARY KEY,
	code TEXT NOT NULL
);
`

// New creates a new SQLite-backed storage.Store.
func New(dsn string) (storage.Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create sqlite schema: %w", err)
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var code string
	err := s.db.QueryRowContext(ctx,
		`SELECT code FROM destination_codes WHERE location = ?`, key).Scan(&code)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query sqlite store: %w", err)
	}
	return code, true, nil
}

func (s *sqliteStore) Set(ctx context.Context, key, value string) error {
	// First write wins: an existing row is left untouched.
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO destination_codes (location, code) VALUES (?, ?)`, key, value)
	if err != nil {
		return fmt.Errorf("insert into sqlite store: %w", err)
	}
	return nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
