package store

import (
	"context"
	"time"

	"github.com/bwise1/trailhead_admin/internal/model"
	"github.com/bwise1/trailhead_admin/internal/service"
)

type UserStore struct {
	*Collection[model.User, model.UserFilters]

	Roles     *Lookup[model.Role]
	Companies *Lookup[model.CompanyOption]

	svc *service.UserService
}

func NewUserStore(svc *service.UserService, staleAfter time.Duration) *UserStore {
	return &UserStore{
		Collection: NewCollection(svc.List, userID, Options[model.User, model.UserFilters]{
			Name:          "Users",
			FallbackError: "Failed to load users",
			PerPage:       15,
			StaleAfter:    staleAfter,
		}),
		Roles:     NewLookup("roles", svc.Roles),
		Companies: NewLookup("companies", svc.Companies),
		svc:       svc,
	}
}

func userID(u model.User) int64 { return u.ID }

func (s *UserStore) FetchUser(ctx context.Context, id int64) (model.User, error) {
	return s.svc.Get(ctx, id)
}

func (s *UserStore) Create(ctx context.Context, payload model.CreateUserPayload) (model.User, error) {
	user, err := s.svc.Create(ctx, payload)
	if err != nil {
		return model.User{}, err
	}
	s.Append(user)
	return user, nil
}

func (s *UserStore) Update(ctx context.Context, id int64, payload model.UpdateUserPayload) (model.User, error) {
	user, err := s.svc.Update(ctx, id, payload)
	if err != nil {
		return model.User{}, err
	}
	s.Replace(id, user)
	return user, nil
}

func (s *UserStore) Delete(ctx context.Context, id int64) error {
	if err := s.svc.Delete(ctx, id); err != nil {
		return err
	}
	s.Remove(id)
	return nil
}

func (s *UserStore) Reset() {
	s.Collection.Reset()
	s.Roles.Reset()
	s.Companies.Reset()
}
