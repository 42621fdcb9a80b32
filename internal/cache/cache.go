package cache

import "sync"

// Memo is a bounded map of computed values.
// When it grows past its limit the least recently used quarter is evicted.
//
// Memo is safe for concurrent use and must not be copied.
type Memo[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[V]
	limit   int
	tick    int64
	hits    uint64
	misses  uint64
}

type entry[V any] struct {
	value V
	used  int64
}

// New returns a memo holding at most limit entries.
// A limit of 0 means unbounded.
func New[K comparable, V any](limit int) *Memo[K, V] {
	return &Memo[K, V]{
		entries: make(map[K]*entry[V]),
		limit:   limit,
	}
}

// GetOrCompute returns the memoised value for key, calling compute on a miss.
// compute runs with the memo locked and must not call back into it.
func (m *Memo[K, V]) GetOrCompute(key K, compute func() V) V {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tick++
	if e, ok := m.entries[key]; ok {
		m.hits++
		e.used = m.tick
		return e.value
	}
	m.misses++
	v := compute()
	m.entries[key] = &entry[V]{value: v, used: m.tick}
	if m.limit > 0 && len(m.entries) > m.limit {
		m.evict()
	}
	return v
}

// Reset drops every entry and the hit statistics.
func (m *Memo[K, V]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[K]*entry[V])
	m.tick = 0
	m.hits = 0
	m.misses = 0
}

// Stats returns hit and miss counts since the last Reset.
func (m *Memo[K, V]) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Stats{Len: len(m.entries), Limit: m.limit, Hits: m.hits, Misses: m.misses}
}

// evict removes the least recently used entries until a quarter of the
// limit is free. Caller must hold m.mu.
func (m *Memo[K, V]) evict() {
	keep := m.limit * 3 / 4
	if keep < 1 {
		keep = 1
	}
	n := len(m.entries) - keep
	for ; n > 0; n-- {
		var (
			oldest K
			used   int64 = -1
		)
		for k, e := range m.entries {
			if used < 0 || e.used < used {
				oldest, used = k, e.used
			}
		}
		delete(m.entries, oldest)
	}
}

// Stats describes memo usage.
type Stats struct {
	Len    int
	Limit  int
	Hits   uint64
	Misses uint64
}
