package cart

import (
	"context"

	"edumart/internal/slice"
)

// snapshotKey groups the operations that replace the whole cart.
const snapshotKey = "cart"

type State struct {
	slice.Status
	Cart *Cart
}

type Slice struct {
	*slice.Base
	svc   Service
	state State
}

func NewSlice(svc Service) *Slice {
	return &Slice{Base: slice.NewBase("cart"), svc: svc}
}

func (s *Slice) State() State {
	var out State
	s.Read(func(st slice.Status) {
		out.Status = st
		out.Cart = s.state.Cart.Clone()
	})
	return out
}

func (s *Slice) FetchCart(ctx context.Context) (*Cart, error) {
	return slice.Run(ctx, s.Base, snapshotKey, s.svc.GetCart, s.replace)
}

func (s *Slice) AddToCart(ctx context.Context, req AddToCartRequest) (*Cart, error) {
	return slice.Run(ctx, s.Base, snapshotKey, func(ctx context.Context) (*Cart, error) {
		if req.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		return s.svc.AddToCart(ctx, req)
	}, s.replace)
}

// UpdateCartItem sets a line's quantity; zero or below removes the line.
func (s *Slice) UpdateCartItem(ctx context.Context, id string, quantity int) (*Cart, error) {
	if quantity <= 0 {
		if err := s.RemoveFromCart(ctx, id); err != nil {
			return nil, err
		}
		return s.State().Cart, nil
	}
	return slice.Run(ctx, s.Base, snapshotKey, func(ctx context.Context) (*Cart, error) {
		return s.svc.UpdateCartItem(ctx, id, UpdateCartItemRequest{Quantity: quantity})
	}, s.replace)
}

// RemoveFromCart deletes a line and recomputes the totals locally instead of
// refetching.
func (s *Slice) RemoveFromCart(ctx context.Context, id string) error {
	_, err := slice.Run(ctx, s.Base, "", func(ctx context.Context) (string, error) {
		return id, s.svc.RemoveFromCart(ctx, id)
	}, func(id string) {
		if s.state.Cart != nil {
			s.state.Cart.Remove(id)
		}
	})
	return err
}

func (s *Slice) ClearCart(ctx context.Context) error {
	_, err := slice.Run(ctx, s.Base, snapshotKey, func(ctx context.Context) (bool, error) {
		return true, s.svc.ClearCart(ctx)
	}, func(bool) {
		s.state.Cart = EmptyCart()
	})
	return err
}

// Reset forgets the cart, e.g. after sign-out.
func (s *Slice) Reset() {
	s.Base.Reset(func() { s.state = State{} })
}

func (s *Slice) replace(c *Cart) {
	s.state.Cart = c.Clone()
}
