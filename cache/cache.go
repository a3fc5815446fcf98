package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
)

const (
	// DefaultTTL is how long a cached entry is considered fresh. Expiry is
	// evaluated lazily when the entry is read; there is no background sweep.
	DefaultTTL = 30 * time.Minute

	// debounceWindow collapses repeated Set calls for the same key into a
	// single physical write carrying the last value.
	debounceWindow = 500 * time.Millisecond
)

// entry is the envelope every payload is persisted in. Timestamp is the
// capture time in unix milliseconds.
type entry struct {
	Timestamp int64           `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// Cache is a TTL key-value store over a Medium, with debounced writes and a
// quota back-off. The debounce timer table is process-scoped state owned by
// this component: it is created with the cache and dropped on ClearAll.
type Cache struct {
	medium Medium
	clock  clock.Clock
	ttl    time.Duration

	// largeKey identifies the oversized reference dataset. When even the
	// evict-and-retry pass cannot fit it, the write is skipped instead of
	// failing; the caller is expected to re-fetch that data.
	largeKey string

	mu      sync.Mutex
	timers  map[string]*clock.Timer
	pending map[string][]byte
}

func New(medium Medium, clk clock.Clock, largeKey string) *Cache {
	return &Cache{
		medium:   medium,
		clock:    clk,
		ttl:      DefaultTTL,
		largeKey: largeKey,
		timers:   make(map[string]*clock.Timer),
		pending:  make(map[string][]byte),
	}
}

// Set schedules a debounced write. The value is captured now; a newer Set
// for the same key before the window elapses replaces it and restarts the
// timer. Write failures surface in the log only, since the physical write
// happens after the caller has moved on.
func (c *Cache) Set(key string, value any) {
	data, err := c.encode(value)
	if err != nil {
		log.Printf("error encoding cache entry %s: %v", key, err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending[key] = data
	if t, ok := c.timers[key]; ok {
		t.Stop()
	}
	c.timers[key] = c.clock.AfterFunc(debounceWindow, func() {
		c.flush(key)
	})
}

// SetImmediate writes through synchronously, bypassing the debounce. Used
// for data that must survive an imminent shutdown or page transition.
func (c *Cache) SetImmediate(key string, value any) error {
	data, err := c.encode(value)
	if err != nil {
		return fmt.Errorf("error encoding cache entry %s: %w", key, err)
	}

	// Cancel any pending debounced write so it cannot clobber this one.
	c.mu.Lock()
	if t, ok := c.timers[key]; ok {
		t.Stop()
		delete(c.timers, key)
	}
	delete(c.pending, key)
	c.mu.Unlock()

	return c.write(key, data)
}

// Get unmarshals the entry for key into v and reports whether a fresh entry
// existed. Entries past the TTL, and entries that fail to parse, are treated
// as absent and evicted.
func (c *Cache) Get(key string, v any) bool {
	data, err := c.medium.Read(key)
	if err != nil {
		log.Printf("error reading cache entry %s: %v", key, err)
		return false
	}
	if data == nil {
		return false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		log.Printf("evicting malformed cache entry %s: %v", key, err)
		c.evict(key)
		return false
	}

	if c.expired(&e) {
		c.evict(key)
		return false
	}

	if err := json.Unmarshal(e.Payload, v); err != nil {
		log.Printf("evicting cache entry %s with unreadable payload: %v", key, err)
		c.evict(key)
		return false
	}
	return true
}

// ClearExpired evicts every entry past the TTL and returns how many were
// removed. Malformed entries count as expired.
func (c *Cache) ClearExpired() int {
	keys, err := c.medium.Keys()
	if err != nil {
		log.Printf("error listing cache keys: %v", err)
		return 0
	}

	removed := 0
	for _, key := range keys {
		data, err := c.medium.Read(key)
		if err != nil || data == nil {
			continue
		}
		var e entry
		if err := json.Unmarshal(data, &e); err != nil || c.expired(&e) {
			c.evict(key)
			removed++
		}
	}
	return removed
}

// ClearAll drops every entry and every pending debounced write.
func (c *Cache) ClearAll() error {
	c.mu.Lock()
	for key, t := range c.timers {
		t.Stop()
		delete(c.timers, key)
	}
	c.pending = make(map[string][]byte)
	c.mu.Unlock()

	keys, err := c.medium.Keys()
	if err != nil {
		return fmt.Errorf("error listing cache keys: %w", err)
	}
	for _, key := range keys {
		if err := c.medium.Delete(key); err != nil {
			return fmt.Errorf("error deleting cache entry %s: %w", key, err)
		}
	}
	return nil
}

func (c *Cache) encode(value any) ([]byte, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(entry{
		Timestamp: c.clock.Now().UnixMilli(),
		Payload:   payload,
	})
}

func (c *Cache) flush(key string) {
	c.mu.Lock()
	data, ok := c.pending[key]
	delete(c.pending, key)
	delete(c.timers, key)
	c.mu.Unlock()

	if !ok {
		return
	}
	if err := c.write(key, data); err != nil {
		log.Printf("error flushing cache entry %s: %v", key, err)
	}
}

// write persists data, applying the quota back-off: on a quota failure,
// evict expired entries and retry once. A retry failure for the designated
// large key is swallowed; for any other key it is an error.
func (c *Cache) write(key string, data []byte) error {
	err := c.medium.Write(key, data)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrQuotaExceeded) {
		return fmt.Errorf("error writing cache entry %s: %w", key, err)
	}

	log.Printf("cache quota exceeded writing %s, evicting expired entries", key)
	c.ClearExpired()

	err = c.medium.Write(key, data)
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrQuotaExceeded) && key == c.largeKey {
		// Too big even after eviction. Skip caching it; the system
		// re-fetches this dataset rather than erroring.
		log.Printf("skipping cache of %s: still over quota after eviction", key)
		return nil
	}
	return fmt.Errorf("error writing cache entry %s after eviction: %w", key, err)
}

func (c *Cache) expired(e *entry) bool {
	captured := time.UnixMilli(e.Timestamp)
	return c.clock.Now().Sub(captured) > c.ttl
}

func (c *Cache) evict(key string) {
	if err := c.medium.Delete(key); err != nil {
		log.Printf("error evicting cache entry %s: %v", key, err)
	}
}
