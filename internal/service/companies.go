package service

import (
	"context"

	"github.com/bwise1/trailhead_admin/internal/model"
)

const (
	companiesPath = "/admin/companies"

	dropdownPageSize = 100
)

type CompanyService struct {
	api API
}

func NewCompanyService(api API) *CompanyService {
	return &CompanyService{api: api}
}

func (s *CompanyService) List(ctx context.Context, filters model.CompanyFilters) (Page[model.CompanyListItem], error) {
	return list[model.CompanyListItem](ctx, s.api, companiesPath, "companies", filters)
}

func (s *CompanyService) Get(ctx context.Context, id int64) (model.Company, error) {
	env, err := s.api.Get(ctx, itemPath(companiesPath, id), nil)
	return one[model.Company](env, err, "company")
}

func (s *CompanyService) Create(ctx context.Context, data model.CompanyFormData) (model.Company, error) {
	env, err := s.api.Post(ctx, companiesPath, data)
	return one[model.Company](env, err, "company")
}

func (s *CompanyService) Update(ctx context.Context, id int64, data model.CompanyFormData) (model.Company, error) {
	env, err := s.api.Put(ctx, itemPath(companiesPath, id), data)
	return one[model.Company](env, err, "company")
}

func (s *CompanyService) Delete(ctx context.Context, id int64) error {
	_, err := s.api.Delete(ctx, itemPath(companiesPath, id))
	return err
}

// Dropdown loads up to 100 companies for select inputs.
func (s *CompanyService) Dropdown(ctx context.Context) ([]model.CompanyOption, error) {
	page, err := list[model.CompanyOption](ctx, s.api, companiesPath, "companies", model.CompanyFilters{PerPage: dropdownPageSize})
	return page.Items, err
}
