package store

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Lookup holds supporting dropdown data (roles, counties, company
// options). The UI works without it, so failures are logged and dropped.
type Lookup[T any] struct {
	name string
	load func(ctx context.Context) ([]T, error)

	mu          sync.RWMutex
	items       []T
	initialized bool
	generation  uint64

	flight singleflight.Group
}

func NewLookup[T any](name string, load func(ctx context.Context) ([]T, error)) *Lookup[T] {
	return &Lookup[T]{name: name, load: load, items: []T{}}
}

// Fetch reloads unconditionally.
func (l *Lookup[T]) Fetch(ctx context.Context) {
	l.mu.RLock()
	gen := l.generation
	l.mu.RUnlock()

	items, err := l.load(ctx)
	if err != nil {
		log.Printf("[%s]: failed to load %s: %v", l.name, l.name, err)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.generation {
		return
	}
	if items == nil {
		items = []T{}
	}
	l.items = items
	l.initialized = true
}

// Ensure loads once; concurrent callers share the request.
func (l *Lookup[T]) Ensure(ctx context.Context) {
	l.mu.RLock()
	ready := l.initialized && len(l.items) > 0
	l.mu.RUnlock()
	if ready {
		return
	}

	ch := l.flight.DoChan(ensureKey, func() (interface{}, error) {
		l.Fetch(context.WithoutCancel(ctx))
		return nil, nil
	})
	select {
	case <-ch:
	case <-ctx.Done():
	}
}

func (l *Lookup[T]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Lookup[T]) Initialized() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.initialized
}

// RemoveWhere drops the items for which match returns true.
func (l *Lookup[T]) RemoveWhere(match func(T) bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.items[:0:0]
	for _, item := range l.items {
		if !match(item) {
			kept = append(kept, item)
		}
	}
	l.items = kept
}

func (l *Lookup[T]) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = []T{}
	l.initialized = false
	l.generation++
	l.flight.Forget(ensureKey)
}
