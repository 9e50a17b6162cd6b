package category

import (
	"context"
	"net/url"
	"strings"

	"edumart/internal/api"
	"edumart/internal/logger"

	"go.uber.org/zap"
)

// Service wraps the /Categories endpoints.
type Service interface {
	GetCategories(ctx context.Context) ([]Category, error)
	GetCategoryByID(ctx context.Context, id string) (*Category, error)
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*Category, error)
}

type service struct {
	client *api.Client
}

func NewService(client *api.Client) Service {
	return &service{client: client}
}

func (s *service) GetCategories(ctx context.Context) ([]Category, error) {
	var tree []Category
	if err := s.client.Get(ctx, "/Categories", nil, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func (s *service) GetCategoryByID(ctx context.Context, id string) (*Category, error) {
	if id == "" {
		return nil, ErrEmptyCategoryID
	}
	var c Category
	if err := s.client.Get(ctx, "/Categories/"+url.PathEscape(id), nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateCategory"),
	)

	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyCategoryName
	}

	var c Category
	if err := s.client.Post(ctx, "/Categories", req, &c); err != nil {
		log.Warn("create category failed", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}

	log.Info("category created", zap.String("category_id", c.ID))
	return &c, nil
}
