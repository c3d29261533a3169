package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bwise1/trailhead_admin/internal/http/admin"
	"github.com/bwise1/trailhead_admin/internal/model"
	"github.com/bwise1/trailhead_admin/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int64
	Name string
}

type itemFilters struct {
	Page int
}

// fakeSource counts fetches and can hold them until released.
type fakeSource struct {
	calls atomic.Int32
	hold  chan struct{}

	mu    sync.Mutex
	items []item
	err   error
}

func (f *fakeSource) fetch(ctx context.Context, _ itemFilters) (service.Page[item], error) {
	f.calls.Add(1)
	if f.hold != nil {
		select {
		case <-f.hold:
		case <-ctx.Done():
			return service.Page[item]{}, ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return service.Page[item]{}, f.err
	}
	items := append([]item(nil), f.items...)
	return service.Page[item]{Items: items, Meta: &model.PaginationMeta{CurrentPage: 1, LastPage: 1, PerPage: 15, Total: len(items)}}, nil
}

func (f *fakeSource) set(items []item, err error) {
	f.mu.Lock()
	f.items, f.err = items, err
	f.mu.Unlock()
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newItems(src *fakeSource, clk *clock) *Collection[item, itemFilters] {
	opts := Options[item, itemFilters]{
		Name:          "Items",
		FallbackError: "Failed to load items",
		StaleAfter:    5 * time.Minute,
	}
	if clk != nil {
		opts.Now = clk.Now
	}
	return NewCollection(src.fetch, func(i item) int64 { return i.ID }, opts)
}

func TestEnsureWithinTTLDoesNotRefetch(t *testing.T) {
	src := &fakeSource{items: []item{{1, "Ngong"}}}
	c := newItems(src, nil)
	ctx := context.Background()

	require.NoError(t, c.Ensure(ctx, itemFilters{}))
	require.NoError(t, c.Ensure(ctx, itemFilters{}))

	assert.EqualValues(t, 1, src.calls.Load())
	assert.True(t, c.Initialized())
	assert.Len(t, c.Items(), 1)
}

func TestConcurrentEnsureSharesOneRequest(t *testing.T) {
	src := &fakeSource{items: []item{{1, "Ngong"}}, hold: make(chan struct{})}
	c := newItems(src, nil)

	var wg sync.WaitGroup
	errs := make([]error, 10)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = c.Ensure(context.Background(), itemFilters{})
		}(i)
	}

	assert.Eventually(t, func() bool { return src.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.True(t, c.Loading())
	close(src.hold)
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.EqualValues(t, 1, src.calls.Load())
	assert.False(t, c.Loading())
	assert.Equal(t, []item{{1, "Ngong"}}, c.Items())
}

func TestEnsureRefreshesStaleCacheInBackground(t *testing.T) {
	clk := &clock{now: time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)}
	src := &fakeSource{items: []item{{1, "Ngong"}}}
	c := newItems(src, clk)
	ctx := context.Background()

	require.NoError(t, c.Ensure(ctx, itemFilters{}))

	clk.Advance(6 * time.Minute)
	src.set([]item{{1, "Ngong"}, {2, "Karura"}}, nil)

	require.NoError(t, c.Ensure(ctx, itemFilters{}))
	// cached items are served while the refresh runs
	assert.False(t, c.Loading())

	assert.Eventually(t, func() bool { return c.Len() == 2 }, time.Second, 5*time.Millisecond)
	assert.EqualValues(t, 2, src.calls.Load())
	assert.Equal(t, clk.Now(), c.LastFetchedAt())
}

func TestBackgroundRefreshFailureKeepsItems(t *testing.T) {
	clk := &clock{now: time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)}
	src := &fakeSource{items: []item{{1, "Ngong"}}}
	c := newItems(src, clk)
	ctx := context.Background()

	require.NoError(t, c.Ensure(ctx, itemFilters{}))
	clk.Advance(6 * time.Minute)
	src.set(nil, errors.New("dial tcp: connection refused"))

	require.NoError(t, c.Ensure(ctx, itemFilters{}))
	assert.Eventually(t, func() bool { return src.calls.Load() == 2 }, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return c.Err() != "" }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []item{{1, "Ngong"}}, c.Items())
}

func TestEnsureRefetchesEmptyResult(t *testing.T) {
	src := &fakeSource{}
	c := newItems(src, nil)
	ctx := context.Background()

	require.NoError(t, c.Ensure(ctx, itemFilters{}))
	require.NoError(t, c.Ensure(ctx, itemFilters{}))

	assert.True(t, c.Initialized())
	assert.EqualValues(t, 2, src.calls.Load())
	assert.NotNil(t, c.Items())
}

func TestFetchAllAlwaysHitsNetwork(t *testing.T) {
	src := &fakeSource{items: []item{{1, "Ngong"}}}
	c := newItems(src, nil)
	ctx := context.Background()

	require.NoError(t, c.FetchAll(ctx, itemFilters{}))
	require.NoError(t, c.FetchAll(ctx, itemFilters{}))

	assert.EqualValues(t, 2, src.calls.Load())
	assert.Equal(t, 1, c.Meta().Total)
}

func TestFetchAllErrorMessages(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want string
	}{
		{"Plain error uses fallback", errors.New("boom"), "Failed to load items"},
		{"API error keeps its message", &admin.APIError{Message: "You do not have permission to view trails.", Status: 403}, "You do not have permission to view trails."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src := &fakeSource{err: tc.err}
			c := newItems(src, nil)

			err := c.FetchAll(context.Background(), itemFilters{})
			assert.Error(t, err)
			assert.Equal(t, tc.want, c.Err())
			assert.False(t, c.Initialized())
			assert.False(t, c.Loading())

			c.ClearError()
			assert.Empty(t, c.Err())
		})
	}
}

func TestEnsureCallerCancelDoesNotAbortSharedFetch(t *testing.T) {
	src := &fakeSource{items: []item{{1, "Ngong"}}, hold: make(chan struct{})}
	c := newItems(src, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Ensure(ctx, itemFilters{}) }()

	assert.Eventually(t, func() bool { return src.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	close(src.hold)
	assert.Eventually(t, func() bool { return c.Len() == 1 }, time.Second, 5*time.Millisecond)
}

func TestResetDiscardsInFlightResult(t *testing.T) {
	src := &fakeSource{items: []item{{1, "Ngong"}}, hold: make(chan struct{})}
	c := newItems(src, nil)

	done := make(chan error, 1)
	go func() { done <- c.FetchAll(context.Background(), itemFilters{}) }()
	assert.Eventually(t, func() bool { return src.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	c.Reset()
	close(src.hold)
	require.NoError(t, <-done)

	assert.Empty(t, c.Items())
	assert.False(t, c.Initialized())
	assert.False(t, c.Loading())
	assert.Equal(t, model.DefaultMeta(15), c.Meta())
}

func TestCollectionMutations(t *testing.T) {
	src := &fakeSource{items: []item{{1, "Ngong"}, {2, "Karura"}}}
	c := newItems(src, nil)
	require.NoError(t, c.FetchAll(context.Background(), itemFilters{}))

	assert.True(t, c.Replace(2, item{2, "Karura Forest"}))
	assert.False(t, c.Replace(9, item{9, "Missing"}))

	c.Prepend(item{3, "Hell's Gate"})
	c.Append(item{4, "Longonot"})
	assert.True(t, c.Update(1, func(i *item) { i.Name = "Ngong Hills" }))
	assert.True(t, c.Remove(4))
	assert.False(t, c.Remove(4))

	assert.Equal(t, []item{{3, "Hell's Gate"}, {1, "Ngong Hills"}, {2, "Karura Forest"}}, c.Items())

	found, ok := c.Find(3)
	assert.True(t, ok)
	assert.Equal(t, "Hell's Gate", found.Name)
}

func TestLookupSwallowsErrorsAndLoadsOnce(t *testing.T) {
	var calls atomic.Int32
	fail := true
	l := NewLookup("roles", func(context.Context) ([]string, error) {
		calls.Add(1)
		if fail {
			return nil, errors.New("boom")
		}
		return []string{"admin", "super_admin"}, nil
	})
	ctx := context.Background()

	l.Ensure(ctx)
	assert.False(t, l.Initialized())
	assert.Empty(t, l.Items())

	fail = false
	l.Ensure(ctx)
	l.Ensure(ctx)
	assert.EqualValues(t, 2, calls.Load())
	assert.Equal(t, []string{"admin", "super_admin"}, l.Items())

	l.RemoveWhere(func(s string) bool { return s == "admin" })
	assert.Equal(t, []string{"super_admin"}, l.Items())

	l.Reset()
	assert.False(t, l.Initialized())
	assert.Empty(t, l.Items())
}
