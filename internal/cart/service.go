package cart

import (
	"context"
	"net/url"

	"edumart/internal/api"
	"edumart/internal/logger"

	"go.uber.org/zap"
)

// Service wraps the /Cart endpoints. Every call answers with the full cart
// except removal and clearing.
type Service interface {
	GetCart(ctx context.Context) (*Cart, error)
	AddToCart(ctx context.Context, req AddToCartRequest) (*Cart, error)
	UpdateCartItem(ctx context.Context, id string, req UpdateCartItemRequest) (*Cart, error)
	RemoveFromCart(ctx context.Context, id string) error
	ClearCart(ctx context.Context) error
}

type service struct {
	client *api.Client
}

func NewService(client *api.Client) Service {
	return &service{client: client}
}

func (s *service) GetCart(ctx context.Context) (*Cart, error) {
	var c Cart
	if err := s.client.Get(ctx, "/Cart", nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *service) AddToCart(ctx context.Context, req AddToCartRequest) (*Cart, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddToCart"),
	)

	if req.ProductID == "" {
		return nil, ErrEmptyProductID
	}

	var c Cart
	if err := s.client.Post(ctx, "/Cart", req, &c); err != nil {
		log.Info("add to cart failed",
			zap.String("product_id", req.ProductID),
			zap.Int("quantity", req.Quantity),
			zap.Error(err),
		)
		return nil, err
	}
	return &c, nil
}

func (s *service) UpdateCartItem(ctx context.Context, id string, req UpdateCartItemRequest) (*Cart, error) {
	if id == "" {
		return nil, ErrEmptyCartItemID
	}
	var c Cart
	if err := s.client.Put(ctx, "/Cart/"+url.PathEscape(id), req, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *service) RemoveFromCart(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyCartItemID
	}
	return s.client.Delete(ctx, "/Cart/"+url.PathEscape(id), nil)
}

func (s *service) ClearCart(ctx context.Context) error {
	return s.client.Delete(ctx, "/Cart", nil)
}
