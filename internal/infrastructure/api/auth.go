package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/storefront-client/internal/application/dto"
	"github.com/jhoicas/storefront-client/internal/application/ports"
	"github.com/jhoicas/storefront-client/internal/domain"
	"github.com/jhoicas/storefront-client/internal/domain/entity"
)

var _ ports.AuthService = (*AuthService)(nil)

// AuthService wrapper de los endpoints de sesión del back office.
type AuthService struct {
	c *Client
}

// NewAuthService construye el wrapper.
func NewAuthService(c *Client) *AuthService {
	return &AuthService{c: c}
}

// Login POST /api/admin/auth/login.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	var out dto.LoginResponse
	in := dto.LoginRequest{Email: email, Password: password}
	if err := s.c.doJSON(ctx, http.MethodPost, "/api/admin/auth/login", nil, in, &out); err != nil {
		return nil, err
	}
	return &ports.LoginResult{
		Token:   out.Token,
		Admin:   toAdminUser(out.Admin),
		Message: out.Message,
	}, nil
}

// Logout POST /api/admin/logout.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.c.doJSON(ctx, http.MethodPost, "/api/admin/logout", nil, nil, nil)
}

// Profile GET /api/admin/profile; el backend envuelve la identidad en {"admin": ...}.
func (s *AuthService) Profile(ctx context.Context) (*entity.AdminUser, error) {
	var out dto.ProfileResponse
	if err := s.c.doJSON(ctx, http.MethodGet, "/api/admin/profile", nil, nil, &out); err != nil {
		return nil, err
	}
	if out.Admin == nil {
		return nil, fmt.Errorf("api: perfil sin identidad: %w", domain.ErrUnexpected)
	}
	return toAdminUser(out.Admin), nil
}

// Stats GET /api/admin/stats.
func (s *AuthService) Stats(ctx context.Context) (*dto.StatsDTO, error) {
	var out dto.StatsResponse
	if err := s.c.doJSON(ctx, http.MethodGet, "/api/admin/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Stats, nil
}
