package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*QueryCache, *time.Time) {
	t.Helper()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache := NewQueryCache(nil, EvictAfter)
	cache.now = func() time.Time { return now }
	return cache, &now
}

func TestQueryCache_GetPut(t *testing.T) {
	t.Run("fresh entry hits", func(t *testing.T) {
		cache, _ := newTestCache(t)
		key := FraudCaseDetailKey("42")

		cache.Put(key, []byte(`{"id":"42"}`))

		payload, ok := cache.Get(key, DefaultFreshness)
		require.True(t, ok)
		assert.JSONEq(t, `{"id":"42"}`, string(payload))
	})

	t.Run("missing key misses", func(t *testing.T) {
		cache, _ := newTestCache(t)
		_, ok := cache.Get(FraudCaseDetailKey("nope"), DefaultFreshness)
		assert.False(t, ok)
	})

	t.Run("stale entry misses", func(t *testing.T) {
		cache, now := newTestCache(t)
		key := FraudCaseListKey(ListParams{})
		cache.Put(key, []byte(`[]`))

		*now = now.Add(DefaultFreshness + time.Second)
		_, ok := cache.Get(key, DefaultFreshness)
		assert.False(t, ok)
	})

	t.Run("volatile window expires sooner", func(t *testing.T) {
		cache, now := newTestCache(t)
		key := CustomerSearchKey("smith", 0, 0)
		cache.Put(key, []byte(`[]`))

		*now = now.Add(3 * time.Minute)
		_, ok := cache.Get(key, VolatileFreshness)
		assert.False(t, ok)

		_, ok = cache.Get(key, DefaultFreshness)
		assert.True(t, ok)
	})
}

func TestQueryCache_IdleEviction(t *testing.T) {
	cache, now := newTestCache(t)
	key := FraudCaseDetailKey("42")
	cache.Put(key, []byte(`{"id":"42"}`))

	// Touch it within the idle window to keep it alive.
	*now = now.Add(8 * time.Minute)
	_, ok := cache.Get(key, 24*time.Hour)
	require.True(t, ok)

	// A further 8 minutes later it is still within 10m of last access.
	*now = now.Add(8 * time.Minute)
	_, ok = cache.Get(key, 24*time.Hour)
	require.True(t, ok)

	// Left untouched past the idle window, it is gone even for a caller
	// that would accept arbitrarily old data.
	*now = now.Add(EvictAfter + time.Second)
	_, ok = cache.Get(key, 24*time.Hour)
	assert.False(t, ok)
}

func TestQueryCache_Invalidate(t *testing.T) {
	cache, _ := newTestCache(t)

	cache.Put(FraudCaseListKey(ListParams{Page: 1}), []byte(`[]`))
	cache.Put(FraudCaseDetailKey("42"), []byte(`{}`))
	cache.Put(CustomerDetailKey("c-1"), []byte(`{}`))

	cache.Invalidate(FamilyFraudCases)

	_, ok := cache.Get(FraudCaseListKey(ListParams{Page: 1}), DefaultFreshness)
	assert.False(t, ok)
	_, ok = cache.Get(FraudCaseDetailKey("42"), DefaultFreshness)
	assert.False(t, ok)

	// Other families survive.
	_, ok = cache.Get(CustomerDetailKey("c-1"), DefaultFreshness)
	assert.True(t, ok)
}

func TestQueryCache_RemoveAndClear(t *testing.T) {
	cache, _ := newTestCache(t)

	cache.Put(FraudCaseDetailKey("42"), []byte(`{}`))
	cache.Put(TransactionFlaggedKey(), []byte(`[]`))

	cache.Remove(FraudCaseDetailKey("42"))
	_, ok := cache.Get(FraudCaseDetailKey("42"), DefaultFreshness)
	assert.False(t, ok)

	cache.Clear()
	_, ok = cache.Get(TransactionFlaggedKey(), DefaultFreshness)
	assert.False(t, ok)
}
