package order

import (
	"context"

	"edumart/internal/address"
	"edumart/internal/slice"
)

type State struct {
	slice.Status
	Orders    []Order
	Current   *Order
	Addresses []address.Address
}

// Slice holds the order history and the saved addresses used at checkout.
type Slice struct {
	*slice.Base
	svc       Service
	addresses address.Service
	state     State
}

func NewSlice(svc Service, addresses address.Service) *Slice {
	return &Slice{Base: slice.NewBase("orders"), svc: svc, addresses: addresses}
}

func (s *Slice) State() State {
	var out State
	s.Read(func(st slice.Status) {
		out.Status = st
		out.Orders = cloneOrders(s.state.Orders)
		if s.state.Current != nil {
			o := s.state.Current.Clone()
			out.Current = &o
		}
		out.Addresses = append([]address.Address(nil), s.state.Addresses...)
	})
	return out
}

func (s *Slice) FetchOrders(ctx context.Context) ([]Order, error) {
	return slice.Run(ctx, s.Base, "list", s.svc.GetOrders, func(list []Order) {
		s.state.Orders = cloneOrders(list)
	})
}

func (s *Slice) FetchOrderByID(ctx context.Context, id string) (*Order, error) {
	return slice.Run(ctx, s.Base, "current", func(ctx context.Context) (*Order, error) {
		return s.svc.GetOrderByID(ctx, id)
	}, s.setCurrent)
}

// CreateOrder prepends the new order and makes it current for the
// confirmation view.
func (s *Slice) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	return slice.Run(ctx, s.Base, "", func(ctx context.Context) (*Order, error) {
		return s.svc.CreateOrder(ctx, req)
	}, func(o *Order) {
		s.state.Orders = append([]Order{o.Clone()}, s.state.Orders...)
		s.setCurrent(o)
	})
}

func (s *Slice) FetchAddresses(ctx context.Context) ([]address.Address, error) {
	return slice.Run(ctx, s.Base, "addresses", s.addresses.GetAddresses, func(list []address.Address) {
		s.state.Addresses = append([]address.Address(nil), list...)
	})
}

func (s *Slice) CreateAddress(ctx context.Context, req address.CreateAddressRequest) (*address.Address, error) {
	return slice.Run(ctx, s.Base, "", func(ctx context.Context) (*address.Address, error) {
		return s.addresses.CreateAddress(ctx, req)
	}, func(a *address.Address) {
		s.state.Addresses = append(s.state.Addresses, *a)
	})
}

func (s *Slice) ClearCurrentOrder() {
	s.Update(func() { s.state.Current = nil })
}

func (s *Slice) Reset() {
	s.Base.Reset(func() { s.state = State{} })
}

func (s *Slice) setCurrent(o *Order) {
	cp := o.Clone()
	s.state.Current = &cp
}

func cloneOrders(in []Order) []Order {
	if in == nil {
		return nil
	}
	out := make([]Order, len(in))
	for i, o := range in {
		out[i] = o.Clone()
	}
	return out
}
