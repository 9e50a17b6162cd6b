package order

import (
	"context"
	"net/url"

	"edumart/internal/api"
	"edumart/internal/logger"

	"go.uber.org/zap"
)

// Service wraps the /Orders endpoints.
type Service interface {
	GetOrders(ctx context.Context) ([]Order, error)
	GetOrderByID(ctx context.Context, id string) (*Order, error)
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error)
}

type service struct {
	client *api.Client
}

func NewService(client *api.Client) Service {
	return &service{client: client}
}

func (s *service) GetOrders(ctx context.Context) ([]Order, error) {
	var list []Order
	if err := s.client.Get(ctx, "/Orders", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *service) GetOrderByID(ctx context.Context, id string) (*Order, error) {
	if id == "" {
		return nil, ErrEmptyOrderID
	}
	var o Order
	if err := s.client.Get(ctx, "/Orders/"+url.PathEscape(id), nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
	)

	if req.ShippingAddressID == "" || req.BillingAddressID == "" {
		return nil, ErrAddressRequired
	}
	if !req.PaymentMethod.Valid() {
		return nil, ErrInvalidPaymentMethod
	}

	var o Order
	if err := s.client.Post(ctx, "/Orders", req, &o); err != nil {
		log.Warn("create order failed",
			zap.String("payment_method", req.PaymentMethod.String()),
			zap.Int("items", len(req.OrderItems)),
			zap.Error(err),
		)
		return nil, err
	}

	log.Info("order created",
		zap.String("order_id", o.ID),
		zap.String("order_number", o.OrderNumber),
		zap.Float64("total", o.Total),
	)
	return &o, nil
}
