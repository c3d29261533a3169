package store

import (
	"context"
	"time"

	"github.com/bwise1/trailhead_admin/internal/model"
	"github.com/bwise1/trailhead_admin/internal/service"
)

type CompanyStore struct {
	*Collection[model.CompanyListItem, model.CompanyFilters]

	Dropdown *Lookup[model.CompanyOption]

	svc *service.CompanyService
}

func NewCompanyStore(svc *service.CompanyService, staleAfter time.Duration) *CompanyStore {
	return &CompanyStore{
		Collection: NewCollection(svc.List, companyID, Options[model.CompanyListItem, model.CompanyFilters]{
			Name:          "Companies",
			FallbackError: "Failed to load companies",
			PerPage:       15,
			StaleAfter:    staleAfter,
		}),
		Dropdown: NewLookup("companies", svc.Dropdown),
		svc:      svc,
	}
}

func companyID(c model.CompanyListItem) int64 { return c.ID }

func (s *CompanyStore) FetchCompany(ctx context.Context, id int64) (model.Company, error) {
	return s.svc.Get(ctx, id)
}

func (s *CompanyStore) Create(ctx context.Context, data model.CompanyFormData) (model.Company, error) {
	return s.svc.Create(ctx, data)
}

func (s *CompanyStore) Update(ctx context.Context, id int64, data model.CompanyFormData) (model.Company, error) {
	company, err := s.svc.Update(ctx, id, data)
	if err != nil {
		return model.Company{}, err
	}
	s.Collection.Update(id, func(row *model.CompanyListItem) {
		row.Name = company.Name
		row.Slug = company.Slug
		row.IsVerified = company.IsVerified
	})
	return company, nil
}

func (s *CompanyStore) Delete(ctx context.Context, id int64) error {
	if err := s.svc.Delete(ctx, id); err != nil {
		return err
	}
	s.Remove(id)
	s.Dropdown.RemoveWhere(func(o model.CompanyOption) bool { return o.ID == id })
	return nil
}

func (s *CompanyStore) Reset() {
	s.Collection.Reset()
	s.Dropdown.Reset()
}
