package session

import (
	"context"
	"errors"
)

// ErrNoProvider is the panic value of MustFromContext. It means a handler
// was mounted outside the session middleware, which is a wiring defect.
var ErrNoProvider = errors.New("session: store used outside of its provider")

type ctxKey struct{}

// NewContext returns a copy of ctx carrying store.
func NewContext(ctx context.Context, store *Store) context.Context {
	return context.WithValue(ctx, ctxKey{}, store)
}

// FromContext returns the store carried by ctx, if any.
func FromContext(ctx context.Context) (*Store, bool) {
	store, ok := ctx.Value(ctxKey{}).(*Store)
	return store, ok && store != nil
}

// MustFromContext returns the store carried by ctx and panics with
// ErrNoProvider when there is none.
func MustFromContext(ctx context.Context) *Store {
	store, ok := FromContext(ctx)
	if !ok {
		panic(ErrNoProvider)
	}
	return store
}
