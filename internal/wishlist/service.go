package wishlist

import (
	"context"
	"net/url"

	"edumart/internal/api"
	"edumart/internal/logger"

	"go.uber.org/zap"
)

// Service wraps the /Wishlist endpoints.
type Service interface {
	GetWishlist(ctx context.Context) (*Wishlist, error)
	AddToWishlist(ctx context.Context, req AddRequest) error
	RemoveFromWishlist(ctx context.Context, id string) error
}

type service struct {
	client *api.Client
}

func NewService(client *api.Client) Service {
	return &service{client: client}
}

func (s *service) GetWishlist(ctx context.Context) (*Wishlist, error) {
	var w Wishlist
	if err := s.client.Get(ctx, "/Wishlist", nil, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *service) AddToWishlist(ctx context.Context, req AddRequest) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddToWishlist"),
	)

	if req.ProductID == "" {
		return ErrEmptyProductID
	}

	if err := s.client.Post(ctx, "/Wishlist", req, nil); err != nil {
		log.Info("add to wishlist failed", zap.String("product_id", req.ProductID), zap.Error(err))
		return err
	}
	return nil
}

func (s *service) RemoveFromWishlist(ctx context.Context, id string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "RemoveFromWishlist"),
	)

	if id == "" {
		return ErrEmptyItemID
	}

	if err := s.client.Delete(ctx, "/Wishlist/"+url.PathEscape(id), nil); err != nil {
		log.Info("remove from wishlist failed", zap.String("item_id", id), zap.Error(err))
		return err
	}
	return nil
}
