package store

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/bwise1/trailhead_admin/internal/http/admin"
	"github.com/bwise1/trailhead_admin/internal/model"
	"github.com/bwise1/trailhead_admin/internal/service"
	"golang.org/x/sync/singleflight"
)

const DefaultStaleAfter = 5 * time.Minute

const (
	ensureKey  = "ensure"
	refreshKey = "refresh"
)

// FetchFunc loads one page of a resource.
type FetchFunc[T any, F any] func(ctx context.Context, filters F) (service.Page[T], error)

// MergeFunc decides how a fetched page lands in the cache. The default
// replaces the cached items.
type MergeFunc[T any, F any] func(cached, fetched []T, filters F) []T

type Options[T any, F any] struct {
	// Name prefixes log lines, e.g. "Trails".
	Name string
	// FallbackError is shown when a failure carries no user facing message.
	FallbackError string
	PerPage       int
	StaleAfter    time.Duration
	Merge         MergeFunc[T, F]
	Now           func() time.Time
}

type FetchOption func(*fetchConfig)

type fetchConfig struct {
	silent bool
}

// Silent leaves the Loading flag alone; used for background refreshes.
func Silent() FetchOption {
	return func(c *fetchConfig) { c.silent = true }
}

// Collection is the list cache of one resource. Only Ensure deduplicates
// requests; concurrent FetchAll calls each hit the network and the last
// response to arrive wins.
type Collection[T any, F any] struct {
	name       string
	fallback   string
	perPage    int
	staleAfter time.Duration
	fetch      FetchFunc[T, F]
	merge      MergeFunc[T, F]
	idOf       func(T) int64
	now        func() time.Time

	mu            sync.RWMutex
	items         []T
	meta          model.PaginationMeta
	loading       int
	err           string
	initialized   bool
	lastFetchedAt time.Time
	generation    uint64

	flight singleflight.Group
}

func NewCollection[T any, F any](fetch FetchFunc[T, F], idOf func(T) int64, opts Options[T, F]) *Collection[T, F] {
	if opts.StaleAfter <= 0 {
		opts.StaleAfter = DefaultStaleAfter
	}
	if opts.PerPage <= 0 {
		opts.PerPage = 15
	}
	if opts.Merge == nil {
		opts.Merge = func(_, fetched []T, _ F) []T { return fetched }
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Collection[T, F]{
		name:       opts.Name,
		fallback:   opts.FallbackError,
		perPage:    opts.PerPage,
		staleAfter: opts.StaleAfter,
		fetch:      fetch,
		merge:      opts.Merge,
		idOf:       idOf,
		now:        opts.Now,
		items:      []T{},
		meta:       model.DefaultMeta(opts.PerPage),
	}
}

// FetchAll always hits the network. On failure the user facing message
// is kept in Err and the error is returned.
func (c *Collection[T, F]) FetchAll(ctx context.Context, filters F, opts ...FetchOption) error {
	var cfg fetchConfig
	for _, o := range opts {
		o(&cfg)
	}

	c.mu.Lock()
	gen := c.generation
	if !cfg.silent {
		c.loading++
	}
	c.err = ""
	c.mu.Unlock()

	page, err := c.fetch(ctx, filters)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !cfg.silent && c.loading > 0 {
		c.loading--
	}
	if gen != c.generation {
		// reset while in flight
		return err
	}
	if err != nil {
		c.err = admin.Message(err, c.fallback)
		return err
	}

	c.items = c.merge(c.items, page.Items, filters)
	if c.items == nil {
		c.items = []T{}
	}
	if page.Meta != nil {
		c.meta = *page.Meta
	}
	c.initialized = true
	c.lastFetchedAt = c.now()
	return nil
}

// Ensure returns at once when the cache is populated. A populated but
// stale cache is refreshed in the background. An empty cache is loaded
// once no matter how many callers are waiting.
func (c *Collection[T, F]) Ensure(ctx context.Context, filters F) error {
	c.mu.RLock()
	populated := c.initialized && len(c.items) > 0
	stale := populated && c.now().Sub(c.lastFetchedAt) > c.staleAfter
	c.mu.RUnlock()

	if populated {
		if stale {
			c.refresh(filters)
		}
		return nil
	}

	ch := c.flight.DoChan(ensureKey, func() (interface{}, error) {
		return nil, c.FetchAll(context.WithoutCancel(ctx), filters)
	})
	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Collection[T, F]) refresh(filters F) {
	go func() {
		_, err, _ := c.flight.Do(refreshKey, func() (interface{}, error) {
			return nil, c.FetchAll(context.Background(), filters, Silent())
		})
		if err != nil {
			log.Printf("[%s]: background refresh failed: %v", c.name, err)
		}
	}()
}

func (c *Collection[T, F]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T, F]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T, F]) Find(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if c.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T, F]) Meta() model.PaginationMeta {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.meta
}

func (c *Collection[T, F]) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading > 0
}

// Err is the last user facing failure message, empty when none.
func (c *Collection[T, F]) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

func (c *Collection[T, F]) Initialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.initialized
}

func (c *Collection[T, F]) LastFetchedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastFetchedAt
}

func (c *Collection[T, F]) ClearError() {
	c.mu.Lock()
	c.err = ""
	c.mu.Unlock()
}

// Reset drops everything, including the result of any fetch in flight.
func (c *Collection[T, F]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = []T{}
	c.meta = model.DefaultMeta(c.perPage)
	c.loading = 0
	c.err = ""
	c.initialized = false
	c.lastFetchedAt = time.Time{}
	c.generation++
	c.flight.Forget(ensureKey)
	c.flight.Forget(refreshKey)
}

// Replace swaps the cached item with the same id. It reports whether
// the item was cached.
func (c *Collection[T, F]) Replace(id int64, item T) bool {
	return c.Update(id, func(cached *T) { *cached = item })
}

// Update applies fn to the cached item with the given id in place.
func (c *Collection[T, F]) Update(id int64, fn func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			fn(&c.items[i])
			return true
		}
	}
	return false
}

func (c *Collection[T, F]) Remove(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0:0]
	for _, item := range c.items {
		if c.idOf(item) != id {
			kept = append(kept, item)
		}
	}
	removed := len(kept) != len(c.items)
	c.items = kept
	return removed
}

func (c *Collection[T, F]) Append(item T) {
	c.mu.Lock()
	c.items = append(c.items, item)
	c.mu.Unlock()
}

func (c *Collection[T, F]) Prepend(item T) {
	c.mu.Lock()
	c.items = append([]T{item}, c.items...)
	c.mu.Unlock()
}

func (c *Collection[T, F]) UpdateMeta(fn func(*model.PaginationMeta)) {
	c.mu.Lock()
	fn(&c.meta)
	c.mu.Unlock()
}
