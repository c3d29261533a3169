package store

import (
	"context"
	"time"

	"github.com/bwise1/trailhead_admin/internal/model"
	"github.com/bwise1/trailhead_admin/internal/service"
)

type TrailStore struct {
	*Collection[model.Trail, model.TrailFilters]

	Counties *Lookup[model.CountyOption]

	svc *service.TrailService
}

func NewTrailStore(svc *service.TrailService, staleAfter time.Duration) *TrailStore {
	return &TrailStore{
		Collection: NewCollection(svc.List, trailID, Options[model.Trail, model.TrailFilters]{
			Name:          "Trails",
			FallbackError: "Failed to load trails",
			PerPage:       10,
			StaleAfter:    staleAfter,
		}),
		Counties: NewLookup("counties", svc.Counties),
		svc:      svc,
	}
}

func trailID(t model.Trail) int64 { return t.ID }

func (s *TrailStore) FetchTrail(ctx context.Context, id int64) (model.Trail, error) {
	return s.svc.Get(ctx, id)
}

// Create leaves the list alone; the next list fetch picks the trail up.
func (s *TrailStore) Create(ctx context.Context, payload model.TrailPayload) (model.Trail, error) {
	return s.svc.Create(ctx, payload)
}

func (s *TrailStore) Update(ctx context.Context, id int64, payload model.TrailPayload) (model.Trail, error) {
	trail, err := s.svc.Update(ctx, id, payload)
	if err != nil {
		return model.Trail{}, err
	}
	s.Replace(id, trail)
	return trail, nil
}

func (s *TrailStore) Delete(ctx context.Context, id int64) error {
	if err := s.svc.Delete(ctx, id); err != nil {
		return err
	}
	s.Remove(id)
	return nil
}

func (s *TrailStore) Publish(ctx context.Context, id int64) (model.Trail, error) {
	return s.setStatus(ctx, id, model.TrailPublished)
}

func (s *TrailStore) Unpublish(ctx context.Context, id int64) (model.Trail, error) {
	return s.setStatus(ctx, id, model.TrailDraft)
}

func (s *TrailStore) Archive(ctx context.Context, id int64) (model.Trail, error) {
	return s.setStatus(ctx, id, model.TrailArchived)
}

func (s *TrailStore) setStatus(ctx context.Context, id int64, status model.TrailStatus) (model.Trail, error) {
	trail, err := s.svc.SetStatus(ctx, id, status)
	if err != nil {
		return model.Trail{}, err
	}
	s.Replace(id, trail)
	return trail, nil
}

func (s *TrailStore) Restore(ctx context.Context, id int64) (model.Trail, error) {
	return s.svc.Restore(ctx, id)
}

func (s *TrailStore) Reset() {
	s.Collection.Reset()
	s.Counties.Reset()
}
