package wishlist

import (
	"context"

	"edumart/internal/slice"
)

const snapshotKey = "wishlist"

type State struct {
	slice.Status
	Wishlist *Wishlist
}

type Slice struct {
	*slice.Base
	svc   Service
	state State
}

func NewSlice(svc Service) *Slice {
	return &Slice{Base: slice.NewBase("wishlist"), svc: svc}
}

func (s *Slice) State() State {
	var out State
	s.Read(func(st slice.Status) {
		out.Status = st
		out.Wishlist = s.state.Wishlist.Clone()
	})
	return out
}

func (s *Slice) Contains(productID string) bool {
	var ok bool
	s.Read(func(slice.Status) { ok = s.state.Wishlist.Contains(productID) })
	return ok
}

func (s *Slice) FetchWishlist(ctx context.Context) (*Wishlist, error) {
	return slice.Run(ctx, s.Base, snapshotKey, s.svc.GetWishlist, s.replace)
}

// AddToWishlist posts the item and then refetches the whole wishlist, since
// the add endpoint does not return it.
func (s *Slice) AddToWishlist(ctx context.Context, req AddRequest) (*Wishlist, error) {
	return slice.Run(ctx, s.Base, snapshotKey, func(ctx context.Context) (*Wishlist, error) {
		if err := s.svc.AddToWishlist(ctx, req); err != nil {
			return nil, err
		}
		return s.svc.GetWishlist(ctx)
	}, s.replace)
}

func (s *Slice) RemoveFromWishlist(ctx context.Context, id string) error {
	_, err := slice.Run(ctx, s.Base, "", func(ctx context.Context) (string, error) {
		return id, s.svc.RemoveFromWishlist(ctx, id)
	}, func(id string) {
		if s.state.Wishlist == nil {
			return
		}
		kept := make([]Item, 0, len(s.state.Wishlist.Items))
		for _, it := range s.state.Wishlist.Items {
			if it.ID != id {
				kept = append(kept, it)
			}
		}
		s.state.Wishlist.Items = kept
	})
	return err
}

// Toggle adds productID when absent and removes its item when present.
func (s *Slice) Toggle(ctx context.Context, productID string) error {
	var itemID string
	var found bool
	s.Read(func(slice.Status) { itemID, found = s.state.Wishlist.ItemForProduct(productID) })
	if found {
		return s.RemoveFromWishlist(ctx, itemID)
	}
	_, err := s.AddToWishlist(ctx, AddRequest{ProductID: productID})
	return err
}

func (s *Slice) Reset() {
	s.Base.Reset(func() { s.state = State{} })
}

func (s *Slice) replace(w *Wishlist) {
	if w == nil {
		w = &Wishlist{}
	}
	cp := w.Clone()
	cp.Dedupe()
	s.state.Wishlist = cp
}
