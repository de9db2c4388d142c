// Package cache implements a TTL read-through cache over the key-value
// store. Entries are JSON envelopes carrying the payload and its write time;
// expiry is checked on read and expired entries are evicted, not just
// skipped.
package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ItsHariii/bump-cli/internal/store"
)

const (
	DefaultTTL = 5 * time.Minute

	KeySummaryPrefix = "nutrition_summary:"
	KeyTargets       = "nutrition_targets"
)

// SummaryKey returns the cache key for one day's nutrition summary.
func SummaryKey(date string) string {
	return KeySummaryPrefix + date
}

type entry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

type Cache struct {
	store store.Store
	now   func() time.Time
}

// New builds a cache over the given store. The clock is injectable so tests
// can move time without sleeping; pass nil for time.Now.
func New(s store.Store, now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{store: s, now: now}
}

// Get returns the cached payload for key if it is younger than ttl. An entry
// at or past its TTL is deleted and reported as a miss, so the next read
// also misses rather than finding a logically stale row.
func (c *Cache) Get(key string, ttl time.Duration) (json.RawMessage, bool, error) {
	raw, ok, err := c.store.Get(key)
	if err != nil {
		return nil, false, fmt.Errorf("read cache entry %q: %w", key, err)
	}
	if !ok {
		return nil, false, nil
	}
	var e entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		// A corrupt entry is treated like an expired one.
		_ = c.store.Remove(key)
		return nil, false, nil
	}
	age := c.now().UnixMilli() - e.Timestamp
	if age >= ttl.Milliseconds() {
		if err := c.store.Remove(key); err != nil {
			return nil, false, fmt.Errorf("evict cache entry %q: %w", key, err)
		}
		return nil, false, nil
	}
	return e.Data, true, nil
}

// GetStale returns the payload regardless of age. It is the degraded
// fallback used when a remote fetch fails: stale data beats no data.
func (c *Cache) GetStale(key string) (json.RawMessage, bool, error) {
	raw, ok, err := c.store.Get(key)
	if err != nil {
		return nil, false, fmt.Errorf("read cache entry %q: %w", key, err)
	}
	if !ok {
		return nil, false, nil
	}
	var e entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return nil, false, nil
	}
	return e.Data, true, nil
}

// Set stores data under key, stamped with the current time. Any prior entry
// is overwritten.
func (c *Cache) Set(key string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal cache payload for %q: %w", key, err)
	}
	e := entry{Data: payload, Timestamp: c.now().UnixMilli()}
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal cache entry for %q: %w", key, err)
	}
	if err := c.store.Set(key, string(raw)); err != nil {
		return fmt.Errorf("write cache entry %q: %w", key, err)
	}
	return nil
}

// Invalidate removes the given keys. Missing keys are not an error.
func (c *Cache) Invalidate(keys ...string) error {
	for _, key := range keys {
		if err := c.store.Remove(key); err != nil {
			return fmt.Errorf("invalidate cache entry %q: %w", key, err)
		}
	}
	return nil
}
