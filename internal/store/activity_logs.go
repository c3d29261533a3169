package store

import (
	"context"
	"time"

	"github.com/bwise1/trailhead_admin/internal/model"
	"github.com/bwise1/trailhead_admin/internal/service"
)

// ActivityLogStore is read only.
type ActivityLogStore struct {
	*Collection[model.ActivityLog, model.ActivityLogFilters]

	svc *service.ActivityLogService
}

func NewActivityLogStore(svc *service.ActivityLogService, staleAfter time.Duration) *ActivityLogStore {
	return &ActivityLogStore{
		Collection: NewCollection(svc.List, activityLogID, Options[model.ActivityLog, model.ActivityLogFilters]{
			Name:          "ActivityLogs",
			FallbackError: "Failed to load activity logs",
			PerPage:       10,
			StaleAfter:    staleAfter,
		}),
		svc: svc,
	}
}

func activityLogID(l model.ActivityLog) int64 { return l.ID }

func (s *ActivityLogStore) FetchLog(ctx context.Context, id int64) (model.ActivityLog, error) {
	return s.svc.Get(ctx, id)
}
