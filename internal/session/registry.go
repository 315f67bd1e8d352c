package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry struct {
	store    *Store
	lastSeen time.Time
}

// Registry owns one Store per client session, keyed by an opaque id.
// Stores are created on first contact and dropped once idle for longer
// than the configured TTL.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry
	idleTTL  time.Duration
	onCreate []func(id string, s *Store)
	onEvict  []func(id string)

	now func() time.Time
}

// NewRegistry returns an empty registry. An idleTTL of zero disables
// eviction.
func NewRegistry(idleTTL time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]*entry),
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// OnCreate registers a hook run for every store the registry creates,
// before the store is returned to the caller.
func (r *Registry) OnCreate(fn func(id string, s *Store)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onCreate = append(r.onCreate, fn)
}

// OnEvict registers a hook run whenever a session leaves the registry.
func (r *Registry) OnEvict(fn func(id string)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onEvict = append(r.onEvict, fn)
}

// Create allocates a new session id and its store.
func (r *Registry) Create() (string, *Store) {
	id := uuid.NewString()
	store := New()

	r.mu.Lock()
	r.sessions[id] = &entry{store: store, lastSeen: r.now()}
	hooks := append([]func(string, *Store){}, r.onCreate...)
	r.mu.Unlock()

	for _, fn := range hooks {
		fn(id, store)
	}
	return id, store
}

// Get returns the store for id and refreshes its idle timer.
func (r *Registry) Get(id string) (*Store, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()
	return e.store, true
}

// Remove drops the session with the given id. It reports whether the
// session existed.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	_, ok := r.sessions[id]
	delete(r.sessions, id)
	hooks := append([]func(string){}, r.onEvict...)
	r.mu.Unlock()

	if ok {
		for _, fn := range hooks {
			fn(id)
		}
	}
	return ok
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep evicts every session idle since before now minus the TTL and
// returns how many were removed.
func (r *Registry) Sweep(now time.Time) int {
	if r.idleTTL <= 0 {
		return 0
	}

	r.mu.Lock()
	var evicted []string
	for id, e := range r.sessions {
		if now.Sub(e.lastSeen) > r.idleTTL {
			delete(r.sessions, id)
			evicted = append(evicted, id)
		}
	}
	hooks := append([]func(string){}, r.onEvict...)
	r.mu.Unlock()

	for _, id := range evicted {
		for _, fn := range hooks {
			fn(id)
		}
	}
	return len(evicted)
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 || r.idleTTL <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep(r.now())
		}
	}
}
