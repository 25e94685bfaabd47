package api

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/gregjones/httpcache"
	"github.com/rs/zerolog/log"
)

// cacheEntry is the stored form of one cached read.
type cacheEntry struct {
	Payload    json.RawMessage `json:"payload"`
	FetchedAt  time.Time       `json:"fetchedAt"`
	LastAccess time.Time       `json:"lastAccess"`
}

// QueryCache caches read payloads by Key on top of an httpcache byte store
// (in-memory by default, disk-backed when persistence across runs is
// wanted). Entries become stale after a per-read freshness window and are
// evicted once idle for longer than evictAfter.
type QueryCache struct {
	mu         sync.Mutex
	store      httpcache.Cache
	keys       map[Key]struct{}
	evictAfter time.Duration
	now        func() time.Time
}

// NewQueryCache wraps the given byte store. A nil store gets a fresh
// in-memory cache.
func NewQueryCache(store httpcache.Cache, evictAfter time.Duration) *QueryCache {
	if store == nil {
		store = httpcache.NewMemoryCache()
	}
	return &QueryCache{
		store:      store,
		keys:       map[Key]struct{}{},
		evictAfter: evictAfter,
		now:        time.Now,
	}
}

// Get returns the cached payload for key if it is still fresh within
// freshFor. Stale entries miss; entries idle beyond the eviction window
// are removed.
func (c *QueryCache) Get(key Key, freshFor time.Duration) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, ok := c.store.Get(string(key))
	if !ok {
		return nil, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		log.Warn().Str("key", string(key)).Err(err).Msg("dropping malformed cache entry")
		c.remove(key)
		return nil, false
	}

	now := c.now()
	if now.Sub(entry.LastAccess) > c.evictAfter {
		c.remove(key)
		return nil, false
	}
	if now.Sub(entry.FetchedAt) > freshFor {
		return nil, false
	}

	entry.LastAccess = now
	if updated, err := json.Marshal(entry); err == nil {
		c.store.Set(string(key), updated)
	}
	// Re-register keys found in a disk-backed store from a previous run so
	// family invalidation still covers them.
	c.keys[key] = struct{}{}
	return entry.Payload, true
}

// Put stores payload under key with a fresh timestamp.
func (c *QueryCache) Put(key Key, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	raw, err := json.Marshal(cacheEntry{Payload: payload, FetchedAt: now, LastAccess: now})
	if err != nil {
		log.Warn().Str("key", string(key)).Err(err).Msg("failed to encode cache entry")
		return
	}
	c.store.Set(string(key), raw)
	c.keys[key] = struct{}{}
}

// Invalidate removes every entry belonging to the given resource family,
// so reads after a confirmed write cannot observe stale data.
func (c *QueryCache) Invalidate(family string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prefix := family + "/"
	for key := range c.keys {
		if strings.HasPrefix(string(key), prefix) {
			c.remove(key)
		}
	}
}

// Remove drops a single entry.
func (c *QueryCache) Remove(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(key)
}

// Clear drops every entry.
func (c *QueryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.keys {
		c.remove(key)
	}
}

func (c *QueryCache) remove(key Key) {
	c.store.Delete(string(key))
	delete(c.keys, key)
}
