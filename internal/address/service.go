package address

import (
	"context"

	"edumart/internal/api"
	"edumart/internal/logger"

	"go.uber.org/zap"
)

// Service wraps the /Addresses endpoints.
type Service interface {
	GetAddresses(ctx context.Context) ([]Address, error)
	CreateAddress(ctx context.Context, req CreateAddressRequest) (*Address, error)
}

type service struct {
	client *api.Client
}

func NewService(client *api.Client) Service {
	return &service{client: client}
}

func (s *service) GetAddresses(ctx context.Context) ([]Address, error) {
	var list []Address
	if err := s.client.Get(ctx, "/Addresses", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *service) CreateAddress(ctx context.Context, req CreateAddressRequest) (*Address, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateAddress"),
	)

	var a Address
	if err := s.client.Post(ctx, "/Addresses", req, &a); err != nil {
		log.Info("create address failed", zap.String("country", req.Country), zap.Error(err))
		return nil, err
	}

	log.Info("address created", zap.String("address_id", a.ID), zap.Bool("is_default", a.IsDefault))
	return &a, nil
}
