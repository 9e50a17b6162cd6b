package order

import (
	"context"
	"errors"
	"testing"

	"edumart/internal/address"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockService is a mock implementation of the Service interface
type MockService struct {
	mock.Mock
}

func (m *MockService) GetOrders(ctx context.Context) ([]Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Order), args.Error(1)
}

func (m *MockService) GetOrderByID(ctx context.Context, id string) (*Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

// MockAddressService is a mock for the address service
type MockAddressService struct {
	mock.Mock
}

func (m *MockAddressService) GetAddresses(ctx context.Context) ([]address.Address, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]address.Address), args.Error(1)
}

func (m *MockAddressService) CreateAddress(ctx context.Context, req address.CreateAddressRequest) (*address.Address, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*address.Address), args.Error(1)
}

func TestSlice_Orders(t *testing.T) {
	ctx := context.Background()
	svc := new(MockService)
	s := NewSlice(svc, new(MockAddressService))
	svc.On("GetOrders", mock.Anything).Return([]Order{{ID: "o1", Status: StatusDelivered}}, nil)
	svc.On("GetOrderByID", mock.Anything, "o1").Return(&Order{ID: "o1", Status: StatusDelivered}, nil)

	_, err := s.FetchOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, s.State().Orders, 1)

	_, err = s.FetchOrderByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", s.State().Current.ID)

	s.ClearCurrentOrder()
	assert.Nil(t, s.State().Current)
}

func TestSlice_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success prepends and sets current", func(t *testing.T) {
		svc := new(MockService)
		s := NewSlice(svc, new(MockAddressService))
		svc.On("GetOrders", mock.Anything).Return([]Order{{ID: "old"}}, nil)
		req := CreateOrderRequest{PaymentMethod: PaymentMethodCreditCard, ShippingAddressID: "a1", BillingAddressID: "a1"}
		svc.On("CreateOrder", mock.Anything, req).Return(&Order{ID: "new", Status: StatusPending}, nil)
		_, err := s.FetchOrders(ctx)
		require.NoError(t, err)

		_, err = s.CreateOrder(ctx, req)

		require.NoError(t, err)
		state := s.State()
		require.Len(t, state.Orders, 2)
		assert.Equal(t, "new", state.Orders[0].ID)
		assert.Equal(t, "old", state.Orders[1].ID)
		assert.Equal(t, "new", state.Current.ID)
	})

	t.Run("Failure leaves history", func(t *testing.T) {
		svc := new(MockService)
		s := NewSlice(svc, new(MockAddressService))
		svc.On("CreateOrder", mock.Anything, mock.Anything).Return(nil, errors.New("Cart is empty"))

		_, err := s.CreateOrder(ctx, CreateOrderRequest{})

		require.Error(t, err)
		state := s.State()
		assert.Empty(t, state.Orders)
		assert.Nil(t, state.Current)
		assert.Equal(t, "Cart is empty", state.Error)
	})
}

func TestSlice_Addresses(t *testing.T) {
	ctx := context.Background()
	addrs := new(MockAddressService)
	s := NewSlice(new(MockService), addrs)
	addrs.On("GetAddresses", mock.Anything).Return([]address.Address{{ID: "a1"}}, nil)
	addrs.On("CreateAddress", mock.Anything, mock.Anything).Return(&address.Address{ID: "a2"}, nil)

	_, err := s.FetchAddresses(ctx)
	require.NoError(t, err)
	_, err = s.CreateAddress(ctx, address.CreateAddressRequest{Address1: "2 Main St"})
	require.NoError(t, err)

	list := s.State().Addresses
	require.Len(t, list, 2)
	assert.Equal(t, "a2", list[1].ID)

	s.Reset()
	assert.Empty(t, s.State().Addresses)
}
