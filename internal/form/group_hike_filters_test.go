package form

import (
	"sync"
	"testing"
	"time"

	"github.com/bwise1/trailhead_admin/internal/model"
	"github.com/stretchr/testify/assert"
)

type loadRecorder struct {
	mu    sync.Mutex
	loads []model.GroupHikeFilters
}

func (r *loadRecorder) load(f model.GroupHikeFilters) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loads = append(r.loads, f)
}

func (r *loadRecorder) all() []model.GroupHikeFilters {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.GroupHikeFilters(nil), r.loads...)
}

func TestGroupHikeFilterDefaults(t *testing.T) {
	l := NewGroupHikeListFilters(nil)

	assert.Equal(t, model.GroupHikeFilters{Page: 1, PerPage: 15, Sort: "start_date", Order: "asc"}, l.Filters())
	assert.False(t, l.HasActiveFilters())
}

func TestSearchIsDebounced(t *testing.T) {
	rec := &loadRecorder{}
	l := NewGroupHikeListFilters(rec.load)
	l.debounce = 20 * time.Millisecond
	l.GoToPage(3, 5)

	l.Search("n")
	l.Search("ng")
	l.Search("ngong")

	assert.Eventually(t, func() bool { return len(rec.all()) == 2 }, time.Second, 5*time.Millisecond)
	time.Sleep(3 * l.debounce)

	loads := rec.all()
	assert.Len(t, loads, 2)
	assert.Equal(t, "ngong", loads[1].Search)
	assert.Equal(t, 1, loads[1].Page)
	assert.True(t, l.HasActiveFilters())
}

func TestSetStatusDoesNotReload(t *testing.T) {
	rec := &loadRecorder{}
	l := NewGroupHikeListFilters(rec.load)

	l.SetStatus(model.GroupHikePublished)

	assert.Empty(t, rec.all())
	assert.Equal(t, model.GroupHikePublished, l.Filters().Status)
	assert.True(t, l.HasActiveFilters())
}

func TestChangeResetsPage(t *testing.T) {
	rec := &loadRecorder{}
	l := NewGroupHikeListFilters(rec.load)
	l.GoToPage(2, 4)

	l.Change(func(f *model.GroupHikeFilters) { f.CompanyID = 1 })

	loads := rec.all()
	assert.Len(t, loads, 2)
	assert.Equal(t, 2, loads[0].Page)
	assert.Equal(t, 1, loads[1].Page)
	assert.Equal(t, int64(1), loads[1].CompanyID)
}

func TestClearKeepsPageSize(t *testing.T) {
	rec := &loadRecorder{}
	l := NewGroupHikeListFilters(rec.load)
	l.debounce = time.Hour

	l.SetPerPage(50)
	l.Change(func(f *model.GroupHikeFilters) {
		f.RegionID = 3
		f.DateFrom = "2026-11-01"
		f.Order = "desc"
	})
	l.Search("karura")
	l.Clear()

	assert.Equal(t, model.GroupHikeFilters{Page: 1, PerPage: 50, Sort: "start_date", Order: "asc"}, l.Filters())
	assert.False(t, l.HasActiveFilters())
	assert.Len(t, rec.all(), 3)
}

func TestGoToPageBounds(t *testing.T) {
	rec := &loadRecorder{}
	l := NewGroupHikeListFilters(rec.load)

	l.GoToPage(0, 3)
	l.GoToPage(4, 3)
	l.SetPerPage(0)
	assert.Empty(t, rec.all())

	l.GoToPage(3, 3)
	assert.Equal(t, 3, l.Filters().Page)
	assert.Len(t, rec.all(), 1)
}
