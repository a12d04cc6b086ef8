// ABOUTME: Store interface for flat key/value JSON blob persistence.
// ABOUTME: Absent and corrupt keys degrade to caller defaults, never errors.
package store

import (
	"encoding/json"

	"github.com/charmbracelet/log"
)

// Persisted key layout. One JSON blob per logical key, each independently
// absent-safe.
const (
	KeyMeals        = "meals"
	KeySettings     = "settings"
	KeyBadges       = "badges"
	KeyAchievements = "achievements"
	KeyFasting      = "fasting"

	// KeyAPIKey is reserved for the capture frontend and never read here.
	KeyAPIKey = "apiKey"
)

// Store is a flat key/value blob store. Get returns (nil, nil) for a
// missing key. Writes are last-writer-wins with no transactional guarantee
// across keys; callers must not assume atomicity between two Set calls.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, data []byte) error
	Delete(key string) error
	Keys() ([]string, error)
	Close() error
}

// Load reads and decodes the blob at key into a fresh value, returning def
// when the key is absent, unreadable, or not parseable as T. Corruption is
// logged and swallowed: storage problems never surface as errors to the
// caller.
func Load[T any](s Store, key string, def T) T {
	data, err := s.Get(key)
	if err != nil {
		log.Warn("store read failed, using default", "key", key, "err", err)
		return def
	}
	if data == nil {
		return def
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		log.Warn("corrupt blob, using default", "key", key, "err", err)
		return def
	}
	return v
}

// Save encodes v as JSON and writes it under key.
func Save(s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, data)
}
