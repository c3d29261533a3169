package service

import (
	"context"
	"sort"

	"github.com/bwise1/trailhead_admin/internal/model"
)

const trailsPath = "/admin/trails"

type TrailService struct {
	api API
}

func NewTrailService(api API) *TrailService {
	return &TrailService{api: api}
}

func (s *TrailService) List(ctx context.Context, filters model.TrailFilters) (Page[model.Trail], error) {
	return list[model.Trail](ctx, s.api, trailsPath, "trails", filters)
}

func (s *TrailService) Get(ctx context.Context, id int64) (model.Trail, error) {
	env, err := s.api.Get(ctx, itemPath(trailsPath, id), nil)
	return one[model.Trail](env, err, "trail")
}

func (s *TrailService) Create(ctx context.Context, payload model.TrailPayload) (model.Trail, error) {
	env, err := s.api.Post(ctx, trailsPath, payload)
	return one[model.Trail](env, err, "trail")
}

func (s *TrailService) Update(ctx context.Context, id int64, payload model.TrailPayload) (model.Trail, error) {
	env, err := s.api.Patch(ctx, itemPath(trailsPath, id), payload)
	return one[model.Trail](env, err, "trail")
}

// SetStatus backs publish, unpublish and archive.
func (s *TrailService) SetStatus(ctx context.Context, id int64, status model.TrailStatus) (model.Trail, error) {
	env, err := s.api.Patch(ctx, itemPath(trailsPath, id), model.TrailStatusPayload{Status: status})
	return one[model.Trail](env, err, "trail")
}

func (s *TrailService) Delete(ctx context.Context, id int64) error {
	_, err := s.api.Delete(ctx, itemPath(trailsPath, id))
	return err
}

func (s *TrailService) Restore(ctx context.Context, id int64) (model.Trail, error) {
	env, err := s.api.Post(ctx, itemPath(trailsPath, id, "restore"), struct{}{})
	return one[model.Trail](env, err, "trail")
}

// Counties flattens the popular/other groups, popular first, each sorted by name.
func (s *TrailService) Counties(ctx context.Context) ([]model.CountyOption, error) {
	env, err := s.api.Get(ctx, trailsPath+"/counties", nil)
	groups, err := one[model.CountyGroups](env, err, "counties")
	if err != nil {
		return nil, err
	}

	out := make([]model.CountyOption, 0, len(groups.Popular)+len(groups.Other))
	out = append(out, countyOptions(groups.Popular, true)...)
	out = append(out, countyOptions(groups.Other, false)...)
	return out, nil
}

func countyOptions(m map[string]string, popular bool) []model.CountyOption {
	opts := make([]model.CountyOption, 0, len(m))
	for slug, name := range m {
		opts = append(opts, model.CountyOption{Slug: slug, Name: name, IsPopular: popular})
	}
	sort.Slice(opts, func(i, j int) bool { return opts[i].Name < opts[j].Name })
	return opts
}
