package storage

import (
	"context"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Options selects and configures a storage backend.
type Options struct {
	Driver        string
	DSN           string
	RedisAddr     string
	RedisPassword string
}

// Open returns the backend named by opts.Driver: memory, sqlite, postgres or redis.
func Open(ctx context.Context, opts Options) (Storage, error) {
	switch opts.Driver {
	case "", "memory":
		return NewMemoryStorage(), nil
	case "sqlite":
		return OpenSQL(ctx, DialectSQLite, opts.DSN)
	case "postgres":
		return OpenSQL(ctx, DialectPostgres, opts.DSN)
	case "redis":
		s := NewRedisStorage(opts.RedisAddr, opts.RedisPassword)
		if err := s.client.Ping(ctx).Err(); err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to ping storage: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, opts.Driver)
	}
}
