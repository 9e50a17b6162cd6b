package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"edumart/internal/logger"

	"go.uber.org/zap"
)

// Dialect describes the few SQL differences between supported drivers.
type Dialect struct {
	Driver string
	// Numbered reports whether placeholders are $1, $2 (postgres) rather than ?.
	Numbered bool
}

var (
	DialectSQLite   = Dialect{Driver: "sqlite"}
	DialectPostgres = Dialect{Driver: "postgres", Numbered: true}
)

func (d Dialect) bind(query string) string {
	if !d.Numbered {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SQLStorage stores values in a single client_state table.
type SQLStorage struct {
	db      *sql.DB
	dialect Dialect
}

func NewSQLStorage(db *sql.DB, dialect Dialect) *SQLStorage {
	return &SQLStorage{db: db, dialect: dialect}
}

// OpenSQL opens and pings a database/sql handle for the dialect's driver.
func OpenSQL(ctx context.Context, dialect Dialect, dsn string) (*SQLStorage, error) {
	db, err := sql.Open(dialect.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping storage: %w", err)
	}

	s := NewSQLStorage(db, dialect)
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Migrate creates the client_state table when missing.
func (s *SQLStorage) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS client_state (
			name TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure client_state table: %w", err)
	}
	return nil
}

func (s *SQLStorage) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		s.dialect.bind(`SELECT value FROM client_state WHERE name = ?`),
		key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("storage get failed",
			zap.String("layer", "storage"),
			zap.String("key", key),
			zap.Error(err),
		)
		return "", false, err
	}
	return value, true, nil
}

func (s *SQLStorage) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	_, err := s.db.ExecContext(ctx, s.dialect.bind(`
		INSERT INTO client_state (name, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (name) DO UPDATE
		SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`),
		key, value,
	)
	if err != nil {
		logger.FromCtx(ctx).Error("storage set failed",
			zap.String("layer", "storage"),
			zap.String("key", key),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *SQLStorage) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx,
		s.dialect.bind(`DELETE FROM client_state WHERE name = ?`),
		key,
	)
	return err
}

func (s *SQLStorage) Close() error {
	return s.db.Close()
}
