package service

import (
	"context"

	"github.com/bwise1/trailhead_admin/internal/model"
)

const activityLogsPath = "/admin/activity-logs"

type ActivityLogService struct {
	api API
}

func NewActivityLogService(api API) *ActivityLogService {
	return &ActivityLogService{api: api}
}

func (s *ActivityLogService) List(ctx context.Context, filters model.ActivityLogFilters) (Page[model.ActivityLog], error) {
	return list[model.ActivityLog](ctx, s.api, activityLogsPath, "activity_logs", filters)
}

func (s *ActivityLogService) Get(ctx context.Context, id int64) (model.ActivityLog, error) {
	env, err := s.api.Get(ctx, itemPath(activityLogsPath, id), nil)
	return one[model.ActivityLog](env, err, "activity_log")
}
