// Package kvstore provides the document store underneath the storage
// gateway: five logical collections, each serialized as one JSON blob
// under its own key, read and written whole.
package kvstore

import "context"

// Store is a minimal blob-per-key store. Get returns (nil, nil) for a
// missing key; callers treat absence as an empty collection.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Supported driver names for config.Storage.Driver.
const (
	DriverFile  = "file"
	DriverRedis = "redis"
	DriverMySQL = "mysql"
)
