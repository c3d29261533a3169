package service

import (
	"context"

	"github.com/bwise1/trailhead_admin/internal/model"
)

const groupHikesPath = "/admin/group-hikes"

type GroupHikeService struct {
	api API
}

func NewGroupHikeService(api API) *GroupHikeService {
	return &GroupHikeService{api: api}
}

func (s *GroupHikeService) List(ctx context.Context, filters model.GroupHikeFilters) (Page[model.GroupHikeListItem], error) {
	return list[model.GroupHikeListItem](ctx, s.api, groupHikesPath, "group_hikes", filters)
}

func (s *GroupHikeService) Get(ctx context.Context, id int64) (model.GroupHike, error) {
	env, err := s.api.Get(ctx, itemPath(groupHikesPath, id), nil)
	return decodeGroupHike(one[wireGroupHike](env, err, "group_hike"))
}

func (s *GroupHikeService) Create(ctx context.Context, data model.GroupHikeFormData) (model.GroupHike, error) {
	env, err := s.api.Post(ctx, groupHikesPath, data)
	return decodeGroupHike(one[wireGroupHike](env, err, "group_hike"))
}

func (s *GroupHikeService) Update(ctx context.Context, id int64, data model.GroupHikeFormData) (model.GroupHike, error) {
	env, err := s.api.Put(ctx, itemPath(groupHikesPath, id), data)
	return decodeGroupHike(one[wireGroupHike](env, err, "group_hike"))
}

func (s *GroupHikeService) Delete(ctx context.Context, id int64) error {
	_, err := s.api.Delete(ctx, itemPath(groupHikesPath, id))
	return err
}

func (s *GroupHikeService) Publish(ctx context.Context, id int64) (model.GroupHike, error) {
	env, err := s.api.Patch(ctx, itemPath(groupHikesPath, id, "publish"), struct{}{})
	return decodeGroupHike(one[wireGroupHike](env, err, "group_hike"))
}

func (s *GroupHikeService) Unpublish(ctx context.Context, id int64) (model.GroupHike, error) {
	env, err := s.api.Patch(ctx, itemPath(groupHikesPath, id, "unpublish"), struct{}{})
	return decodeGroupHike(one[wireGroupHike](env, err, "group_hike"))
}

func (s *GroupHikeService) Cancel(ctx context.Context, id int64, reason string) (model.GroupHike, error) {
	env, err := s.api.Patch(ctx, itemPath(groupHikesPath, id, "cancel"), model.CancelGroupHikePayload{CancellationReason: reason})
	return decodeGroupHike(one[wireGroupHike](env, err, "group_hike"))
}

func decodeGroupHike(w wireGroupHike, err error) (model.GroupHike, error) {
	if err != nil {
		return model.GroupHike{}, err
	}
	return w.normalize(), nil
}
