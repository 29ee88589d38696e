// Package storage provides the durable snapshot backends the line-item
// stores persist into. A snapshot is an opaque JSON blob under a fixed key;
// writes are full-state overwrites, last writer wins.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when no snapshot exists under the key.
var ErrNotFound = errors.New("snapshot not found")

// Store is the swappable persistence surface.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
}
