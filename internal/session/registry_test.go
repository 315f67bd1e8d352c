package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/careerpath/internal/types"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestRegistry(ttl time.Duration) (*Registry, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	r := NewRegistry(ttl)
	r.now = clock.now
	return r, clock
}

func TestRegistryCreateAndGet(t *testing.T) {
	r, _ := newTestRegistry(time.Minute)

	id, store := r.Create()
	require.NotEmpty(t, id)

	got, ok := r.Get(id)
	require.True(t, ok)
	assert.Same(t, store, got)
	assert.Equal(t, 1, r.Len())

	_, ok = r.Get("unknown")
	assert.False(t, ok)
}

func TestRegistrySessionsAreIndependent(t *testing.T) {
	r, _ := newTestRegistry(0)
	_, a := r.Create()
	_, b := r.Create()

	a.Login("a@x.com", "pw", types.TrackStudent)

	assert.True(t, a.Snapshot().Authenticated)
	assert.Equal(t, types.DefaultSession(), b.Snapshot())
}

func TestRegistrySweepEvictsIdleSessions(t *testing.T) {
	r, clock := newTestRegistry(10 * time.Minute)

	var evicted []string
	r.OnEvict(func(id string) { evicted = append(evicted, id) })

	idle, _ := r.Create()
	clock.t = clock.t.Add(8 * time.Minute)
	active, _ := r.Create()

	clock.t = clock.t.Add(5 * time.Minute)
	_, ok := r.Get(active)
	require.True(t, ok)

	assert.Equal(t, 1, r.Sweep(clock.t))
	assert.Equal(t, []string{idle}, evicted)

	_, ok = r.Get(idle)
	assert.False(t, ok)
	_, ok = r.Get(active)
	assert.True(t, ok)
}

func TestRegistryZeroTTLNeverEvicts(t *testing.T) {
	r, clock := newTestRegistry(0)
	r.Create()

	assert.Equal(t, 0, r.Sweep(clock.t.Add(24*time.Hour)))
	assert.Equal(t, 1, r.Len())
}

func TestRegistryHooks(t *testing.T) {
	r, _ := newTestRegistry(time.Minute)

	var created []string
	r.OnCreate(func(id string, s *Store) {
		require.NotNil(t, s)
		created = append(created, id)
	})
	var evicted []string
	r.OnEvict(func(id string) { evicted = append(evicted, id) })

	id, _ := r.Create()
	assert.Equal(t, []string{id}, created)

	assert.True(t, r.Remove(id))
	assert.False(t, r.Remove(id))
	assert.Equal(t, []string{id}, evicted)
	assert.Equal(t, 0, r.Len())
}

func TestRegistryRunStopsWithContext(t *testing.T) {
	r, _ := newTestRegistry(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		r.Run(ctx, time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestProviderBoundary(t *testing.T) {
	ctx := context.Background()

	_, ok := FromContext(ctx)
	assert.False(t, ok)
	assert.PanicsWithValue(t, ErrNoProvider, func() { MustFromContext(ctx) })

	store := New()
	ctx = NewContext(ctx, store)
	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, store, got)
	assert.Same(t, store, MustFromContext(ctx))
}
