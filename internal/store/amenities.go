package store

import (
	"context"
	"time"

	"github.com/bwise1/trailhead_admin/internal/model"
	"github.com/bwise1/trailhead_admin/internal/service"
)

type AmenityStore struct {
	*Collection[model.Amenity, model.AmenityFilters]

	svc *service.AmenityService
}

func NewAmenityStore(svc *service.AmenityService, staleAfter time.Duration) *AmenityStore {
	return &AmenityStore{
		Collection: NewCollection(svc.List, amenityID, Options[model.Amenity, model.AmenityFilters]{
			Name:          "Amenities",
			FallbackError: "Failed to load amenities",
			PerPage:       15,
			StaleAfter:    staleAfter,
		}),
		svc: svc,
	}
}

func amenityID(a model.Amenity) int64 { return a.ID }

func (s *AmenityStore) FetchAmenity(ctx context.Context, id int64) (model.Amenity, error) {
	return s.svc.Get(ctx, id)
}

func (s *AmenityStore) Create(ctx context.Context, payload model.AmenityPayload) (model.Amenity, error) {
	amenity, err := s.svc.Create(ctx, payload)
	if err != nil {
		return model.Amenity{}, err
	}
	s.Append(amenity)
	return amenity, nil
}

func (s *AmenityStore) Update(ctx context.Context, id int64, payload model.AmenityPayload) (model.Amenity, error) {
	amenity, err := s.svc.Update(ctx, id, payload)
	if err != nil {
		return model.Amenity{}, err
	}
	s.Replace(id, amenity)
	return amenity, nil
}

func (s *AmenityStore) Delete(ctx context.Context, id int64) error {
	if err := s.svc.Delete(ctx, id); err != nil {
		return err
	}
	s.Remove(id)
	return nil
}
