// Package cache stores synthesizer narratives so repeating an identical
// query does not repeat a billable API call. Engine output is never cached;
// evaluation is cheaper than any cache lookup.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from the parts that make a narration unique:
// the serialized profile, the ranked scheme ids, and the target language.
func Key(parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, "\x1f")))
	return "yojana:v1:" + hex.EncodeToString(hash[:])
}
