// Package store persists analysis snapshots behind a small key/value
// contract so the HTTP server and the rebuild worker can share state
// across backends.
package store

import (
	"context"
	"errors"
)

// Snapshot keys. Every backend stores the same three JSON documents.
const (
	KeyTransactions = "transactions"
	KeySummary      = "category_summary"
	KeySelections   = "demographics"
)

var (
	// ErrNotFound is returned when a snapshot key has never been written.
	ErrNotFound = errors.New("snapshot not found")

	// ErrCorruptSnapshot is returned when a stored snapshot exists but
	// cannot be decoded. Callers decide whether to fall back or fail.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)

// KV is the byte-level contract each backend implements.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
