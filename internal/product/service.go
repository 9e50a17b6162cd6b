package product

import (
	"context"
	"net/url"

	"edumart/internal/api"
	"edumart/internal/logger"

	"go.uber.org/zap"
)

// Service wraps the /Products endpoints.
type Service interface {
	GetProducts(ctx context.Context, filter Filter) (*api.PagedResponse[Product], error)
	GetProductByID(ctx context.Context, id string) (*Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*Product, error)
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)
	UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type service struct {
	client *api.Client
}

func NewService(client *api.Client) Service {
	return &service{client: client}
}

func (s *service) GetProducts(ctx context.Context, filter Filter) (*api.PagedResponse[Product], error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetProducts"),
	)

	q := filter.Query()
	var page api.PagedResponse[Product]
	if err := s.client.Get(ctx, "/Products", q, &page); err != nil {
		return nil, err
	}

	log.Debug("products fetched",
		zap.String("query", q.Encode()),
		zap.Int("count", len(page.Data)),
		zap.Int("total", page.TotalRecords),
	)
	return &page, nil
}

func (s *service) GetProductByID(ctx context.Context, id string) (*Product, error) {
	if id == "" {
		return nil, ErrEmptyProductID
	}
	var p Product
	if err := s.client.Get(ctx, "/Products/"+url.PathEscape(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *service) GetProductBySlug(ctx context.Context, slug string) (*Product, error) {
	if slug == "" {
		return nil, ErrEmptySlug
	}
	var p Product
	if err := s.client.Get(ctx, "/Products/slug/"+url.PathEscape(slug), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateProduct"),
	)

	var p Product
	if err := s.client.Post(ctx, "/Products", req, &p); err != nil {
		log.Warn("create product failed", zap.String("sku", req.SKU), zap.Error(err))
		return nil, err
	}

	log.Info("product created", zap.String("product_id", p.ID))
	return &p, nil
}

func (s *service) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*Product, error) {
	if id == "" {
		return nil, ErrEmptyProductID
	}
	if req.Empty() {
		return nil, ErrNothingToUpdate
	}
	var p Product
	if err := s.client.Put(ctx, "/Products/"+url.PathEscape(id), req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyProductID
	}
	return s.client.Delete(ctx, "/Products/"+url.PathEscape(id), nil)
}
