package service

import (
	"context"

	"github.com/bwise1/trailhead_admin/internal/model"
)

type AuthService struct {
	api API
}

func NewAuthService(api API) *AuthService {
	return &AuthService{api: api}
}

func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	env, err := s.api.Post(ctx, "/admin/login", req)
	return one[model.LoginResponse](env, err, "")
}

func (s *AuthService) Logout(ctx context.Context) error {
	_, err := s.api.Post(ctx, "/admin/logout", struct{}{})
	return err
}
