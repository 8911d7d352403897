// Package cache provides the keyed, invalidate-on-demand memoization of
// list and by-id reads. It is dependency-injected (never a singleton) and
// exposes read/write/invalidate as its only mutation surface.
//
// Keys are (kind, normalized filter descriptor) for lists and (kind, id)
// for single items. Normalization makes semantically identical filters
// collide to the same key, which invalidation relies on. Entries are
// last-writer-wins; freshness is advisory (a TTL marks entries stale, the
// caller decides whether to refetch).
package cache

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// ReadState describes what a Read returned
type ReadState int

const (
	// Miss means no entry exists for the key
	Miss ReadState = iota
	// Fresh means the entry is within its TTL and not invalidated
	Fresh
	// Stale means the entry exists but should be refetched
	Stale
)

// ListEntry is a cached list region together with the filters it was read with
type ListEntry struct {
	Key     string
	Filters map[string]interface{}
	Value   interface{}
}

type entry struct {
	value    interface{}
	filters  map[string]interface{} // list entries only
	storedAt time.Time
	stale    bool
}

// QueryCache is the in-memory keyed cache shared by the sync engines and
// the realtime bridges. All access is mutex-guarded; the read-modify-write
// sequences of the optimistic protocol are serialized by the engines, not
// here.
type QueryCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*entry
}

// New creates an empty cache whose entries stay fresh for ttl
func New(ttl time.Duration) *QueryCache {
	return &QueryCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*entry),
	}
}

// SetClock overrides the cache's notion of now. Test hook.
func (c *QueryCache) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// ListKey builds the normalized key for a filtered list read. Nil and
// empty filter values are dropped and keys sorted, so {} and
// {"project": nil} produce the same key.
func ListKey(kind string, filters map[string]interface{}) string {
	parts := make([]string, 0, len(filters))
	for column, value := range filters {
		if value == nil {
			continue
		}
		formatted := fmt.Sprintf("%v", value)
		if formatted == "" {
			continue
		}
		parts = append(parts, column+"="+formatted)
	}
	sort.Strings(parts)
	return kind + "|list|" + strings.Join(parts, "&")
}

// ItemKey builds the key for a single-item read
func ItemKey(kind, id string) string {
	return kind + "|item|" + id
}

// Read returns whatever is cached for key, which may be stale. It never
// triggers a fetch itself.
func (c *QueryCache) Read(key string) (interface{}, ReadState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, Miss
	}
	if e.stale || c.now().Sub(e.storedAt) > c.ttl {
		return e.value, Stale
	}
	return e.value, Fresh
}

// Write unconditionally overwrites the entry for key. Used both for
// refetch results and optimistic local edits.
func (c *QueryCache) Write(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &entry{value: value, storedAt: c.now()}
}

// WriteList overwrites a list entry, remembering the filters it was read
// with so optimistic writes can target matching regions.
func (c *QueryCache) WriteList(key string, filters map[string]interface{}, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &entry{value: value, filters: filters, storedAt: c.now()}
}

// Invalidate marks every entry of the kind (lists and items) for refetch
// on next read
func (c *QueryCache) Invalidate(kind string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prefix := kind + "|"
	for key, e := range c.entries {
		if strings.HasPrefix(key, prefix) {
			e.stale = true
		}
	}
}

// InvalidateKey marks a single entry for refetch on next read
func (c *QueryCache) InvalidateKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		e.stale = true
	}
}

// Snapshot captures the current value for key, or existed=false when the
// key is missing. The returned value is the stored one; optimistic writers
// must replace, never mutate, cached values for Restore to be exact.
func (c *QueryCache) Snapshot(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Restore puts a snapshot back exactly: a full overwrite, or removal when
// the snapshot recorded a missing key
func (c *QueryCache) Restore(key string, value interface{}, existed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !existed {
		delete(c.entries, key)
		return
	}
	prev, ok := c.entries[key]
	e := &entry{value: value, storedAt: c.now()}
	if ok {
		e.filters = prev.filters
		e.stale = prev.stale
	}
	c.entries[key] = e
}

// Delete removes an entry outright
func (c *QueryCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// ListsFor returns the cached list regions of a kind, for optimistic
// rewrites that must touch every matching region
func (c *QueryCache) ListsFor(kind string) []ListEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	prefix := kind + "|list|"
	var lists []ListEntry
	for key, e := range c.entries {
		if strings.HasPrefix(key, prefix) {
			lists = append(lists, ListEntry{Key: key, Filters: e.filters, Value: e.value})
		}
	}
	return lists
}

// Len returns the number of cached entries
func (c *QueryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
