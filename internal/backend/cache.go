package backend

import (
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

// queryCache is the short-lived response cache: a bounded LRU keyed by
// (source, params), entries invalidated purely by age. There are no
// client-initiated writes, so no write-through invalidation exists.
type queryCache struct {
	entries *lru.Cache
	ttl     time.Duration
	now     func() time.Time
}

type cacheEntry struct {
	value     any
	fetchedAt time.Time
}

func newQueryCache(size int, ttl time.Duration) (*queryCache, error) {
	entries, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &queryCache{entries: entries, ttl: ttl, now: time.Now}, nil
}

func cacheKey(source string, params ...string) string {
	return source + "?" + strings.Join(params, "&")
}

func (q *queryCache) put(key string, v any) {
	q.entries.Add(key, cacheEntry{value: v, fetchedAt: q.now()})
}

func (q *queryCache) get(key string) (any, bool) {
	raw, ok := q.entries.Get(key)
	if !ok {
		return nil, false
	}
	entry := raw.(cacheEntry)
	if q.now().Sub(entry.fetchedAt) > q.ttl {
		q.entries.Remove(key)
		return nil, false
	}
	return entry.value, true
}

// cacheLookup fetches a typed value from the client cache, tolerating a
// disabled (nil) cache.
func cacheLookup[T any](q *queryCache, key string) (T, bool) {
	var zero T
	if q == nil {
		return zero, false
	}
	raw, ok := q.get(key)
	if !ok {
		return zero, false
	}
	v, ok := raw.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

func cacheStore[T any](q *queryCache, key string, v T) {
	if q == nil {
		return
	}
	q.put(key, v)
}
