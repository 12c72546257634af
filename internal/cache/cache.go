// Package cache stores fetched page bodies so repeated runs against
// the same conference site do not re-download anything. Keys are
// derived from URLs; values are opaque bytes.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for page caching.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from a URL. The version segment invalidates
// every entry when the on-disk format changes.
func Key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "confminer:v1:" + hex.EncodeToString(hash[:])
}
