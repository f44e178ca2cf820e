package cache

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/compose/surface"
)

// Store maps derived keys to rendered artifacts. Values are usually
// surfaces, but any value may be stored; only surfaces count against the
// budget and go back to the pool on ResetAll.
//
// Store never evicts on its own.
//
// Thread safety: All methods are safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries map[string]any
	pool    *Pool

	hits   atomic.Uint64
	misses atomic.Uint64

	log atomic.Pointer[slog.Logger]
}

// Stats contains store statistics for monitoring.
type Stats struct {
	// Entries is the number of stored values.
	Entries int
	// Surfaces is how many of those values are surfaces.
	Surfaces int
	// Hits is the number of successful lookups.
	Hits uint64
	// Misses is the number of failed lookups.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), or 0 before any lookup.
	HitRate float64
	// Budget is the current budget value.
	Budget int64
	// Pooled is the number of idle surfaces in the pool.
	Pooled int
}

// NewStore creates an empty store that returns surfaces to pool and
// charges stored surfaces to the pool's budget.
func NewStore(pool *Pool) *Store {
	if pool == nil {
		pool = NewPool(nil)
	}
	s := &Store{
		entries: make(map[string]any),
		pool:    pool,
	}
	s.log.Store(slog.New(slog.DiscardHandler))
	return s
}

// SetLogger sets the logger used for reset events. Nil disables logging.
func (s *Store) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	s.log.Store(l)
}

// Pool returns the pool the store releases surfaces into.
func (s *Store) Pool() *Pool {
	return s.pool
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	v, ok := s.entries[key]
	s.mu.RUnlock()

	if ok {
		s.hits.Add(1)
	} else {
		s.misses.Add(1)
	}
	return v, ok
}

// Surface returns the surface stored under key. It reports false when the
// key is absent or holds a value of another type.
func (s *Store) Surface(key string) (*surface.Surface, bool) {
	v, ok := s.Get(key)
	if !ok {
		return nil, false
	}
	sf, ok := v.(*surface.Surface)
	return sf, ok
}

// Set stores value under key, replacing any previous value. A surface
// value decreases the budget by its area. The replaced value is not
// released; its owner stays responsible for it.
func (s *Store) Set(key string, value any) {
	if sf, ok := value.(*surface.Surface); ok && sf != nil {
		s.pool.Budget().Add(-int64(sf.Area()))
	}

	s.mu.Lock()
	s.entries[key] = value
	s.mu.Unlock()
}

// Len returns the number of stored values.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// ResetAll returns every stored surface to the pool, empties the store and
// restores the budget to its initial value. Pooled surfaces survive.
func (s *Store) ResetAll() {
	s.mu.Lock()
	old := s.entries
	s.entries = make(map[string]any)
	s.mu.Unlock()

	released := 0
	for _, v := range old {
		if sf, ok := v.(*surface.Surface); ok && sf != nil && sf.State() == surface.Active {
			s.pool.Release(sf)
			released++
		}
	}
	s.pool.Budget().Reset()

	s.log.Load().Debug("cache: reset",
		"entries", len(old), "released", released)
}

// Stats returns current store statistics.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	entries := len(s.entries)
	surfaces := 0
	for _, v := range s.entries {
		if _, ok := v.(*surface.Surface); ok {
			surfaces++
		}
	}
	s.mu.RUnlock()

	hits := s.hits.Load()
	misses := s.misses.Load()
	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Entries:  entries,
		Surfaces: surfaces,
		Hits:     hits,
		Misses:   misses,
		HitRate:  hitRate,
		Budget:   s.pool.Budget().Value(),
		Pooled:   s.pool.Len(),
	}
}

// ResetStats zeroes the hit and miss counters.
func (s *Store) ResetStats() {
	s.hits.Store(0)
	s.misses.Store(0)
}
