package service

import (
	"context"

	"github.com/bwise1/trailhead_admin/internal/model"
)

const (
	usersPath = "/admin/users"
	rolesPath = "/admin/roles"
)

type UserService struct {
	api API
}

func NewUserService(api API) *UserService {
	return &UserService{api: api}
}

func (s *UserService) List(ctx context.Context, filters model.UserFilters) (Page[model.User], error) {
	return list[model.User](ctx, s.api, usersPath, "users", filters)
}

func (s *UserService) Get(ctx context.Context, id int64) (model.User, error) {
	env, err := s.api.Get(ctx, itemPath(usersPath, id), nil)
	return one[model.User](env, err, "user")
}

func (s *UserService) Create(ctx context.Context, payload model.CreateUserPayload) (model.User, error) {
	env, err := s.api.Post(ctx, usersPath, payload)
	return one[model.User](env, err, "user")
}

func (s *UserService) Update(ctx context.Context, id int64, payload model.UpdateUserPayload) (model.User, error) {
	env, err := s.api.Patch(ctx, itemPath(usersPath, id), payload)
	return one[model.User](env, err, "user")
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	_, err := s.api.Delete(ctx, itemPath(usersPath, id))
	return err
}

func (s *UserService) Roles(ctx context.Context) ([]model.Role, error) {
	page, err := list[model.Role](ctx, s.api, rolesPath, "roles", nil)
	return page.Items, err
}

// Companies is the unpaginated company list the user form offers.
func (s *UserService) Companies(ctx context.Context) ([]model.CompanyOption, error) {
	page, err := list[model.CompanyOption](ctx, s.api, companiesPath, "companies", nil)
	return page.Items, err
}
