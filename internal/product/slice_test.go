package product

import (
	"context"
	"errors"
	"testing"

	"edumart/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockService is a mock implementation of the Service interface
type MockService struct {
	mock.Mock
}

func (m *MockService) GetProducts(ctx context.Context, filter Filter) (*api.PagedResponse[Product], error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.PagedResponse[Product]), args.Error(1)
}

func (m *MockService) GetProductByID(ctx context.Context, id string) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockService) GetProductBySlug(ctx context.Context, slug string) (*Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockService) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockService) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*Product, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockService) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func loadedSlice(t *testing.T, products ...Product) (*Slice, *MockService) {
	t.Helper()
	svc := new(MockService)
	s := NewSlice(svc)
	svc.On("GetProducts", mock.Anything, mock.Anything).
		Return(&api.PagedResponse[Product]{Data: products, PageNumber: 1, PageSize: 12, TotalRecords: len(products), TotalPages: 1}, nil).
		Once()
	_, err := s.Refresh(context.Background())
	require.NoError(t, err)
	return s, svc
}

func TestSlice_InitialState(t *testing.T) {
	s := NewSlice(new(MockService))
	state := s.State()

	assert.Empty(t, state.Products)
	assert.Nil(t, state.Current)
	assert.Nil(t, state.Paged)
	assert.False(t, state.Loading)
	assert.Equal(t, DefaultFilter(), state.Filter)
}

func TestSlice_FetchProducts(t *testing.T) {
	t.Run("Success stores list and envelope", func(t *testing.T) {
		s, _ := loadedSlice(t, Product{ID: "p1"}, Product{ID: "p2"})
		state := s.State()

		assert.Len(t, state.Products, 2)
		require.NotNil(t, state.Paged)
		assert.Equal(t, 2, state.Paged.TotalRecords)
		assert.False(t, state.Loading)
	})

	t.Run("Network failure keeps data", func(t *testing.T) {
		s, svc := loadedSlice(t, Product{ID: "p1"})
		svc.On("GetProducts", mock.Anything, mock.Anything).Return(nil, errors.New("dial tcp: connection refused"))

		_, err := s.FetchProducts(context.Background(), DefaultFilter())

		require.Error(t, err)
		state := s.State()
		assert.False(t, state.Loading)
		assert.Equal(t, "dial tcp: connection refused", state.Error)
		assert.Len(t, state.Products, 1)
	})
}

func TestSlice_CurrentProduct(t *testing.T) {
	svc := new(MockService)
	s := NewSlice(svc)
	svc.On("GetProductByID", mock.Anything, "p1").Return(&Product{ID: "p1", Name: "Pen"}, nil)
	svc.On("GetProductBySlug", mock.Anything, "ruler").Return(&Product{ID: "p2", Slug: "ruler"}, nil)
	ctx := context.Background()

	_, err := s.FetchProductByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Pen", s.State().Current.Name)

	_, err = s.FetchProductBySlug(ctx, "ruler")
	require.NoError(t, err)
	assert.Equal(t, "p2", s.State().Current.ID)

	s.ClearCurrentProduct()
	assert.Nil(t, s.State().Current)
}

func TestSlice_Mutations(t *testing.T) {
	ctx := context.Background()

	t.Run("Create prepends", func(t *testing.T) {
		s, svc := loadedSlice(t, Product{ID: "p1"})
		svc.On("CreateProduct", mock.Anything, mock.Anything).Return(&Product{ID: "p0"}, nil)

		_, err := s.CreateProduct(ctx, CreateProductRequest{Name: "New"})

		require.NoError(t, err)
		products := s.State().Products
		assert.Equal(t, "p0", products[0].ID)
		assert.Equal(t, "p1", products[1].ID)
	})

	t.Run("Update replaces in place", func(t *testing.T) {
		s, svc := loadedSlice(t, Product{ID: "p1", Name: "Old"}, Product{ID: "p2"})
		svc.On("GetProductByID", mock.Anything, "p1").Return(&Product{ID: "p1", Name: "Old"}, nil)
		svc.On("UpdateProduct", mock.Anything, "p1", mock.Anything).Return(&Product{ID: "p1", Name: "New"}, nil)
		_, err := s.FetchProductByID(ctx, "p1")
		require.NoError(t, err)

		_, err = s.UpdateProduct(ctx, "p1", UpdateProductRequest{Name: ptr("New")})

		require.NoError(t, err)
		state := s.State()
		assert.Equal(t, "New", state.Products[0].Name)
		assert.Equal(t, "p2", state.Products[1].ID)
		assert.Equal(t, "New", state.Current.Name)
		svc.AssertNumberOfCalls(t, "GetProducts", 1)
	})

	t.Run("Delete filters by id", func(t *testing.T) {
		s, svc := loadedSlice(t, Product{ID: "p1"}, Product{ID: "p2"})
		svc.On("DeleteProduct", mock.Anything, "p1").Return(nil)

		require.NoError(t, s.DeleteProduct(ctx, "p1"))

		products := s.State().Products
		require.Len(t, products, 1)
		assert.Equal(t, "p2", products[0].ID)
	})

	t.Run("Delete failure keeps list", func(t *testing.T) {
		s, svc := loadedSlice(t, Product{ID: "p1"})
		svc.On("DeleteProduct", mock.Anything, "p1").Return(&api.APIError{Status: 403, Message: "Forbidden"})

		err := s.DeleteProduct(ctx, "p1")

		require.Error(t, err)
		assert.Len(t, s.State().Products, 1)
		assert.Equal(t, "Forbidden", s.State().Error)
	})
}

func TestSlice_SetFilter(t *testing.T) {
	svc := new(MockService)
	s := NewSlice(svc)

	s.SetFilter(Filter{CategoryID: ptr("c9"), PageNumber: 2})

	f := s.State().Filter
	assert.Equal(t, "c9", *f.CategoryID)
	assert.Equal(t, 2, f.PageNumber)
	assert.Equal(t, DefaultPageSize, f.PageSize)

	svc.On("GetProducts", mock.Anything, mock.MatchedBy(func(f Filter) bool {
		return f.CategoryID != nil && *f.CategoryID == "c9" && f.PageNumber == 2
	})).Return(&api.PagedResponse[Product]{}, nil)

	_, err := s.Refresh(context.Background())
	require.NoError(t, err)
	svc.AssertExpectations(t)
}

func TestSlice_StateIsACopy(t *testing.T) {
	s, _ := loadedSlice(t, Product{ID: "p1", ImageURLs: []string{"a.png"}})

	state := s.State()
	state.Products[0].ImageURLs[0] = "mutated"

	assert.Equal(t, "a.png", s.State().Products[0].ImageURLs[0])
}
