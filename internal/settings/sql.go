package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
)

// SQLStore reads settings from the CMS settings table:
//
//	settings (id SERIAL, key VARCHAR UNIQUE, value TEXT)
type SQLStore struct {
	db *sqlx.DB
}

// NewSQLStore connects to a separate database holding the settings table
func NewSQLStore(ctx context.Context, dsn string) (*SQLStore, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)

	if err != nil {
		return nil, fmt.Errorf("could not connect to settings database: %w", err)
	}

	return &SQLStore{db: db}, nil
}

// NewSQLStoreFromPool reads settings through the media repository pool
// instead of opening a second set of connections
func NewSQLStoreFromPool(pool *pgxpool.Pool) *SQLStore {
	return &SQLStore{db: sqlx.NewDb(stdlib.OpenDBFromPool(pool), "pgx")}
}

// NewSQLStoreFromDB wraps an existing connection
func NewSQLStoreFromDB(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Get reads a single setting
func (s *SQLStore) Get(ctx context.Context, key string) (string, error) {
	var value sql.NullString

	err := s.db.GetContext(ctx, &value, `SELECT value FROM settings WHERE key = $1`, key)

	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("could not query setting %s: %w", key, err)
	}

	return value.String, nil
}

// Close releases the database handle. A store built from a pool leaves the pool open.
func (s *SQLStore) Close() error {
	return s.db.Close()
}
