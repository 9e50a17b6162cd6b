package auth

import (
	"context"

	"edumart/internal/api"
	"edumart/internal/logger"

	"go.uber.org/zap"
)

// Service wraps the /Auth endpoints.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Register(ctx context.Context, req RegisterRequest) (*LoginResponse, error)
	Me(ctx context.Context) (*User, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error)
	ChangePassword(ctx context.Context, req ChangePasswordRequest) (bool, error)
}

type service struct {
	client *api.Client
}

func NewService(client *api.Client) Service {
	return &service{client: client}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
	)

	var resp LoginResponse
	if err := s.client.Post(ctx, "/Auth/login", req, &resp); err != nil {
		log.Info("login failed", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}
	if resp.Token == "" {
		log.Error("login returned empty token", zap.String("email", req.Email))
		return nil, ErrMissingToken
	}
	return &resp, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*LoginResponse, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Register"),
	)

	var resp LoginResponse
	if err := s.client.Post(ctx, "/Auth/register", req, &resp); err != nil {
		log.Info("register failed", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}
	if resp.Token == "" {
		log.Error("register returned empty token", zap.String("email", req.Email))
		return nil, ErrMissingToken
	}
	return &resp, nil
}

func (s *service) Me(ctx context.Context) (*User, error) {
	var u User
	if err := s.client.Get(ctx, "/Auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *service) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	var u User
	if err := s.client.Put(ctx, "/Auth/update-profile", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *service) ChangePassword(ctx context.Context, req ChangePasswordRequest) (bool, error) {
	var ok bool
	if err := s.client.Post(ctx, "/Auth/change-password", req, &ok); err != nil {
		return false, err
	}
	return ok, nil
}
