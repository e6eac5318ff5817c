package client

import (
	"strings"
	"sync"
)

// QueryCache is a string-keyed cache of decoded list/detail results. Keys
// are the request path plus encoded query, so invalidating a path prefix
// drops every variant of a listing. Mutations enumerate exactly the keys
// they can affect; there is no invalidate-everything path.
type QueryCache struct {
	mu      sync.RWMutex
	entries map[string]interface{}
}

func NewQueryCache() *QueryCache {
	return &QueryCache{entries: make(map[string]interface{})}
}

func (q *QueryCache) Get(key string) (interface{}, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	v, ok := q.entries[key]
	return v, ok
}

func (q *QueryCache) Set(key string, value interface{}) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries[key] = value
}

// Invalidate drops every entry whose key starts with one of the prefixes.
func (q *QueryCache) Invalidate(prefixes ...string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for key := range q.entries {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				delete(q.entries, key)
				break
			}
		}
	}
}

// Len reports the number of live entries (used by tests).
func (q *QueryCache) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.entries)
}
