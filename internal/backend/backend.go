// Package backend selects and builds the snapshot store from
// configuration.
package backend

import (
	"fmt"
	"log/slog"

	"sobi/internal/config"
	"sobi/internal/store"
	"sobi/internal/store/memory"
	"sobi/internal/store/redis"
	"sobi/internal/store/sqlite"
)

// Type names one of the supported KV backends.
type Type string

const (
	MemoryBackend Type = "memory"
	SQLiteBackend Type = "sqlite"
	RedisBackend  Type = "redis"
)

func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid.
func (t Type) IsValid() bool {
	switch t {
	case MemoryBackend, SQLiteBackend, RedisBackend:
		return true
	default:
		return false
	}
}

// Open builds the snapshot store named by the configuration. The caller
// owns the returned store and must Close it.
func Open(cfg *config.Config, logger *slog.Logger) (*store.Snapshots, error) {
	if logger == nil {
		logger = slog.Default()
	}

	t := Type(cfg.DataBackend)
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.DataBackend)
	}

	var (
		kv  store.KV
		err error
	)
	switch t {
	case SQLiteBackend:
		kv, err = sqlite.Open(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)

	case RedisBackend:
		kv, err = redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("initialize redis backend: %w", err)
		}
		logger.Info("Initialized Redis backend", "addr", cfg.RedisAddr, "db", cfg.RedisDB)

	default:
		kv = memory.New()
		logger.Info("Initialized memory backend")
	}

	return store.NewSnapshots(kv), nil
}
