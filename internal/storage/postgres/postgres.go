package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rawal21/stayfinder/internal/storage"
)

// ensure postgresStore implements storage.Store
var _ storage.Store = (*postgresStore)(nil)

type postgresStore struct {
	pool *pgxpool.Pool
}

const schema = `
CREATE TABLE IF NOT EXISTS destination_codes (
	location TEXT PRIMARY KEY,
	code TEXT NOT NULL
);
`

// New creates a new Postgres-backed storage.Store. Useful when several
// instances should share one destination-code cache.
func New(ctx context.Context, dsn string) (storage.Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres store: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres store: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create postgres schema: %w", err)
	}

	return &postgresStore{pool: pool}, nil
}

func (s *postgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	var code string
	err := s.pool.QueryRow(ctx,
		`SELECT code FROM destination_codes WHERE location = $1`, key).Scan(&code)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query postgres store: %w", err)
	}
	return code, true, nil
}

func (s *postgresStore) Set(ctx context.Context, key, value string) error {
	// First write wins: ON CONFLICT keeps the existing row.
	_, err := s.pool.Exec(ctx,
		`INSERT INTO destination_codes (location, code) VALUES ($1, $2)
		 ON CONFLICT (location) DO NOTHING`, key, value)
	if err != nil {
		return fmt.Errorf("insert into postgres store: %w", err)
	}
	return nil
}

func (s *postgresStore) Close() error {
	s.pool.Close()
	return nil
}
