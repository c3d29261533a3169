package form

import (
	"sync"
	"time"

	"github.com/bwise1/trailhead_admin/internal/model"
)

const (
	SearchDebounce  = 300 * time.Millisecond
	hikeListPerPage = 15
)

func defaultHikeFilters(perPage int) model.GroupHikeFilters {
	return model.GroupHikeFilters{Page: 1, PerPage: perPage, Sort: "start_date", Order: "asc"}
}

// GroupHikeListFilters is the filter state of the group hike list page.
// Every change that should reload the list calls load with the new
// filters; search input is debounced.
type GroupHikeListFilters struct {
	load     func(model.GroupHikeFilters)
	debounce time.Duration

	mu      sync.Mutex
	filters model.GroupHikeFilters
	timer   *time.Timer
}

func NewGroupHikeListFilters(load func(model.GroupHikeFilters)) *GroupHikeListFilters {
	return &GroupHikeListFilters{
		load:     load,
		debounce: SearchDebounce,
		filters:  defaultHikeFilters(hikeListPerPage),
	}
}

func (l *GroupHikeListFilters) Filters() model.GroupHikeFilters {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filters
}

func (l *GroupHikeListFilters) HasActiveFilters() bool {
	f := l.Filters()
	return f.Search != "" || f.Status != "" || f.OrganizerID != 0 || f.CompanyID != 0 ||
		f.RegionID != 0 || f.DateFrom != "" || f.DateTo != ""
}

// Search applies the input once typing pauses.
func (l *GroupHikeListFilters) Search(input string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.timer != nil {
		l.timer.Stop()
	}
	l.timer = time.AfterFunc(l.debounce, func() {
		l.update(func(f *model.GroupHikeFilters) {
			f.Search = input
			f.Page = 1
		}, true)
	})
}

// SetStatus changes the status tab without reloading.
func (l *GroupHikeListFilters) SetStatus(status model.GroupHikeStatus) {
	l.update(func(f *model.GroupHikeFilters) {
		f.Status = status
		f.Page = 1
	}, false)
}

// Change applies fn, goes back to the first page and reloads.
func (l *GroupHikeListFilters) Change(fn func(f *model.GroupHikeFilters)) {
	l.update(func(f *model.GroupHikeFilters) {
		fn(f)
		f.Page = 1
	}, true)
}

// Clear resets every filter but the page size and reloads.
func (l *GroupHikeListFilters) Clear() {
	l.mu.Lock()
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
	l.mu.Unlock()

	l.update(func(f *model.GroupHikeFilters) {
		*f = defaultHikeFilters(f.PerPage)
	}, true)
}

// GoToPage ignores pages outside 1..lastPage.
func (l *GroupHikeListFilters) GoToPage(page, lastPage int) {
	if page < 1 || page > lastPage {
		return
	}
	l.update(func(f *model.GroupHikeFilters) { f.Page = page }, true)
}

func (l *GroupHikeListFilters) SetPerPage(perPage int) {
	if perPage <= 0 {
		return
	}
	l.update(func(f *model.GroupHikeFilters) {
		f.PerPage = perPage
		f.Page = 1
	}, true)
}

func (l *GroupHikeListFilters) update(fn func(f *model.GroupHikeFilters), reload bool) {
	l.mu.Lock()
	fn(&l.filters)
	filters := l.filters
	l.mu.Unlock()

	if reload && l.load != nil {
		l.load(filters)
	}
}
