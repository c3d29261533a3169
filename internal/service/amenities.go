package service

import (
	"context"

	"github.com/bwise1/trailhead_admin/internal/model"
)

const amenitiesPath = "/admin/amenities"

type AmenityService struct {
	api API
}

func NewAmenityService(api API) *AmenityService {
	return &AmenityService{api: api}
}

func (s *AmenityService) List(ctx context.Context, _ model.AmenityFilters) (Page[model.Amenity], error) {
	return list[model.Amenity](ctx, s.api, amenitiesPath, "amenities", nil)
}

func (s *AmenityService) Get(ctx context.Context, id int64) (model.Amenity, error) {
	env, err := s.api.Get(ctx, itemPath(amenitiesPath, id), nil)
	return one[model.Amenity](env, err, "amenity")
}

func (s *AmenityService) Create(ctx context.Context, payload model.AmenityPayload) (model.Amenity, error) {
	env, err := s.api.Post(ctx, amenitiesPath, payload)
	return one[model.Amenity](env, err, "amenity")
}

func (s *AmenityService) Update(ctx context.Context, id int64, payload model.AmenityPayload) (model.Amenity, error) {
	env, err := s.api.Put(ctx, itemPath(amenitiesPath, id), payload)
	return one[model.Amenity](env, err, "amenity")
}

func (s *AmenityService) Delete(ctx context.Context, id int64) error {
	_, err := s.api.Delete(ctx, itemPath(amenitiesPath, id))
	return err
}
