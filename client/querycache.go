package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// FetchFunc loads the value for a cache key.
type FetchFunc func(ctx context.Context) (any, error)

// QueryState reports where a key is in its fetch lifecycle. IsPending is
// true only for the very first load, when no value exists yet; IsFetching
// also covers background revalidation of a stale value.
type QueryState struct {
	IsPending  bool
	IsFetched  bool
	IsFetching bool
}

// QueryCache is a stale-while-revalidate cache keyed by canonical key
// strings. A fresh value is returned as-is; a stale value is returned
// immediately while a background refresh runs; a missing value blocks the
// caller. Concurrent loads of the same key are collapsed into one fetch.
type QueryCache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	ttl     time.Duration
	group   singleflight.Group

	// now is swappable in tests
	now func() time.Time
}

type cacheEntry struct {
	value     any
	fetchedAt time.Time
	fetched   bool
	fetching  bool
}

// NewQueryCache creates a cache whose values stay fresh for ttl.
func NewQueryCache(ttl time.Duration) *QueryCache {
	return &QueryCache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Key builds a canonical cache key from a sequence of parts. Equal
// sequences always produce equal keys regardless of part types.
func Key(parts ...any) string {
	encoded := make([]string, 0, len(parts))
	for _, part := range parts {
		switch v := part.(type) {
		case string:
			encoded = append(encoded, v)
		default:
			raw, err := json.Marshal(v)
			if err != nil {
				encoded = append(encoded, fmt.Sprintf("%v", v))
				continue
			}
			encoded = append(encoded, string(raw))
		}
	}
	return strings.Join(encoded, "/")
}

// Get returns the value for key. Cache misses block on fetch; stale hits
// return the cached value immediately and revalidate in the background;
// fresh hits never touch the network.
func (qc *QueryCache) Get(ctx context.Context, key string, fetch FetchFunc) (any, error) {
	qc.mu.Lock()
	entry, ok := qc.entries[key]
	if ok && entry.fetched {
		value := entry.value
		stale := qc.now().Sub(entry.fetchedAt) >= qc.ttl
		if stale && !entry.fetching {
			entry.fetching = true
			go qc.revalidate(key, fetch)
		}
		qc.mu.Unlock()
		return value, nil
	}
	qc.mu.Unlock()

	return qc.load(ctx, key, fetch)
}

// Refetch loads the key unconditionally, ignoring freshness.
func (qc *QueryCache) Refetch(ctx context.Context, key string, fetch FetchFunc) (any, error) {
	return qc.load(ctx, key, fetch)
}

// Invalidate drops the key; the next Get blocks on a full fetch.
func (qc *QueryCache) Invalidate(key string) {
	qc.mu.Lock()
	delete(qc.entries, key)
	qc.mu.Unlock()
}

// State reports the fetch lifecycle flags for a key.
func (qc *QueryCache) State(key string) QueryState {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	entry, ok := qc.entries[key]
	if !ok {
		return QueryState{IsPending: true}
	}
	return QueryState{
		IsPending:  !entry.fetched,
		IsFetched:  entry.fetched,
		IsFetching: entry.fetching,
	}
}

// load runs the fetch through singleflight so concurrent callers of the
// same key share a single round trip.
func (qc *QueryCache) load(ctx context.Context, key string, fetch FetchFunc) (any, error) {
	qc.mu.Lock()
	entry, ok := qc.entries[key]
	if !ok {
		entry = &cacheEntry{}
		qc.entries[key] = entry
	}
	entry.fetching = true
	qc.mu.Unlock()

	value, err, _ := qc.group.Do(key, func() (any, error) {
		return fetch(ctx)
	})

	qc.mu.Lock()
	defer qc.mu.Unlock()
	entry.fetching = false
	if err != nil {
		// A failed refresh keeps any previously cached value usable.
		if entry.fetched {
			return entry.value, err
		}
		return nil, err
	}
	entry.value = value
	entry.fetched = true
	entry.fetchedAt = qc.now()
	return value, nil
}

func (qc *QueryCache) revalidate(key string, fetch FetchFunc) {
	// Background refresh carries no caller deadline.
	_, _ = qc.load(context.Background(), key, fetch)
}
