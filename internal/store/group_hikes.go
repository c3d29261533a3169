package store

import (
	"context"
	"time"

	"github.com/bwise1/trailhead_admin/internal/model"
	"github.com/bwise1/trailhead_admin/internal/service"
)

type GroupHikeStore struct {
	*Collection[model.GroupHikeListItem, model.GroupHikeFilters]

	svc *service.GroupHikeService
}

func NewGroupHikeStore(svc *service.GroupHikeService, staleAfter time.Duration) *GroupHikeStore {
	return &GroupHikeStore{
		Collection: NewCollection(svc.List, groupHikeID, Options[model.GroupHikeListItem, model.GroupHikeFilters]{
			Name:          "GroupHikes",
			FallbackError: "Failed to load group hikes",
			PerPage:       15,
			StaleAfter:    staleAfter,
		}),
		svc: svc,
	}
}

func groupHikeID(h model.GroupHikeListItem) int64 { return h.ID }

func (s *GroupHikeStore) FetchGroupHike(ctx context.Context, id int64) (model.GroupHike, error) {
	return s.svc.Get(ctx, id)
}

func (s *GroupHikeStore) Create(ctx context.Context, data model.GroupHikeFormData) (model.GroupHike, error) {
	return s.svc.Create(ctx, data)
}

// Update merges only the fields the list row shares with the detail
// response; the rest of the row keeps its list-only values.
func (s *GroupHikeStore) Update(ctx context.Context, id int64, data model.GroupHikeFormData) (model.GroupHike, error) {
	hike, err := s.svc.Update(ctx, id, data)
	if err != nil {
		return model.GroupHike{}, err
	}
	s.Collection.Update(id, func(row *model.GroupHikeListItem) {
		row.Title = hike.Title
		row.Status = hike.Status
		row.StatusLabel = hike.StatusLabel
		row.IsFeatured = hike.IsFeatured
	})
	return hike, nil
}

func (s *GroupHikeStore) Delete(ctx context.Context, id int64) error {
	if err := s.svc.Delete(ctx, id); err != nil {
		return err
	}
	s.Remove(id)
	return nil
}

func (s *GroupHikeStore) Publish(ctx context.Context, id int64) (model.GroupHike, error) {
	return s.mergeStatus(s.svc.Publish(ctx, id))
}

func (s *GroupHikeStore) Unpublish(ctx context.Context, id int64) (model.GroupHike, error) {
	return s.mergeStatus(s.svc.Unpublish(ctx, id))
}

func (s *GroupHikeStore) Cancel(ctx context.Context, id int64, reason string) (model.GroupHike, error) {
	return s.mergeStatus(s.svc.Cancel(ctx, id, reason))
}

func (s *GroupHikeStore) mergeStatus(hike model.GroupHike, err error) (model.GroupHike, error) {
	if err != nil {
		return model.GroupHike{}, err
	}
	s.Collection.Update(hike.ID, func(row *model.GroupHikeListItem) {
		row.Status = hike.Status
		row.StatusLabel = hike.StatusLabel
	})
	return hike, nil
}
