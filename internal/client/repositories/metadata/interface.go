// Package metadata is a tiny key/value repository over the local SQLite
// database. Values are opaque bytes.
package metadata

import (
	"context"
)

// Repository is the key/value contract. Get returns (nil, nil) for a
// missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
