// Package query caches fetched note lists under hierarchical scope keys.
//
// Entries are only ever written with store results. Mutations never patch the
// cache; they invalidate a key prefix and the next read refetches.
package query

import (
	"strings"
	"sync"
	"time"

	"tableflip.dev/daybook/pkg/note"
)

const journalsScope = "journals"

// Key is a hierarchical cache scope, e.g. ["journals", "2025-10-07"].
type Key []string

// JournalsKey covers every cached journal list.
func JournalsKey() Key {
	return Key{journalsScope}
}

// DayKey is the cache key of one day's note list.
func DayKey(day note.Day) Key {
	return Key{journalsScope, day.String()}
}

// HasPrefix reports whether prefix matches the leading segments of k.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i := range prefix {
		if k[i] != prefix[i] {
			return false
		}
	}
	return true
}

// Day returns the day segment of a DayKey.
func (k Key) Day() (note.Day, bool) {
	if len(k) != 2 || k[0] != journalsScope {
		return "", false
	}
	return note.Day(k[1]), true
}

func (k Key) String() string {
	return "[" + strings.Join(k, " ") + "]"
}

type entry struct {
	key       Key
	notes     []*note.Note
	stale     bool
	fetchedAt time.Time
}

// Cache is safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

func New() *Cache {
	return &Cache{entries: make(map[string]*entry)}
}

// Get returns a copy of the cached notes for key and whether they are fresh.
// A missing key reports (nil, false).
func (c *Cache) Get(key Key) ([]*note.Note, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key.String()]
	if !ok {
		return nil, false
	}
	return cloneNotes(e.notes), !e.stale
}

// Set stores a fetch result and marks it fresh.
func (c *Cache) Set(key Key, notes []*note.Note) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key.String()] = &entry{
		key:       append(Key(nil), key...),
		notes:     cloneNotes(notes),
		fetchedAt: time.Now(),
	}
}

// Invalidate marks every entry under prefix stale and returns the matched keys.
func (c *Cache) Invalidate(prefix Key) []Key {
	c.mu.Lock()
	defer c.mu.Unlock()
	var matched []Key
	for _, e := range c.entries {
		if e.key.HasPrefix(prefix) {
			e.stale = true
			matched = append(matched, append(Key(nil), e.key...))
		}
	}
	return matched
}

// FetchedAt reports when key was last filled.
func (c *Cache) FetchedAt(key Key) (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key.String()]
	if !ok {
		return time.Time{}, false
	}
	return e.fetchedAt, true
}

func cloneNotes(in []*note.Note) []*note.Note {
	if in == nil {
		return nil
	}
	out := make([]*note.Note, len(in))
	for i, n := range in {
		out[i] = n.Clone()
	}
	return out
}
