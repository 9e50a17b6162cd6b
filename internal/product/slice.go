package product

import (
	"context"

	"edumart/internal/api"
	"edumart/internal/slice"
)

type State struct {
	slice.Status
	Products []Product
	Current  *Product
	Paged    *api.PagedResponse[Product]
	Filter   Filter
}

type Slice struct {
	*slice.Base
	svc   Service
	state State
}

func NewSlice(svc Service) *Slice {
	return &Slice{
		Base:  slice.NewBase("products"),
		svc:   svc,
		state: State{Filter: DefaultFilter()},
	}
}

func (s *Slice) State() State {
	var out State
	s.Read(func(st slice.Status) {
		out.Status = st
		out.Products = cloneProducts(s.state.Products)
		if s.state.Current != nil {
			p := s.state.Current.Clone()
			out.Current = &p
		}
		out.Paged = s.state.Paged.Clone()
		out.Filter = s.state.Filter.clone()
	})
	return out
}

func (s *Slice) FetchProducts(ctx context.Context, filter Filter) (*api.PagedResponse[Product], error) {
	return slice.Run(ctx, s.Base, "list", func(ctx context.Context) (*api.PagedResponse[Product], error) {
		return s.svc.GetProducts(ctx, filter)
	}, func(page *api.PagedResponse[Product]) {
		s.state.Products = cloneProducts(page.Data)
		s.state.Paged = page.Clone()
	})
}

// Refresh fetches the page described by the current filter.
func (s *Slice) Refresh(ctx context.Context) (*api.PagedResponse[Product], error) {
	var f Filter
	s.Read(func(slice.Status) { f = s.state.Filter.clone() })
	return s.FetchProducts(ctx, f)
}

func (s *Slice) FetchProductByID(ctx context.Context, id string) (*Product, error) {
	return slice.Run(ctx, s.Base, "current", func(ctx context.Context) (*Product, error) {
		return s.svc.GetProductByID(ctx, id)
	}, s.setCurrent)
}

func (s *Slice) FetchProductBySlug(ctx context.Context, slug string) (*Product, error) {
	return slice.Run(ctx, s.Base, "current", func(ctx context.Context) (*Product, error) {
		return s.svc.GetProductBySlug(ctx, slug)
	}, s.setCurrent)
}

// CreateProduct prepends the created product to the loaded list.
func (s *Slice) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	return slice.Run(ctx, s.Base, "", func(ctx context.Context) (*Product, error) {
		return s.svc.CreateProduct(ctx, req)
	}, func(p *Product) {
		s.state.Products = append([]Product{p.Clone()}, s.state.Products...)
	})
}

// UpdateProduct replaces the product in place in the list and as current.
func (s *Slice) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*Product, error) {
	return slice.Run(ctx, s.Base, "", func(ctx context.Context) (*Product, error) {
		return s.svc.UpdateProduct(ctx, id, req)
	}, func(p *Product) {
		for i := range s.state.Products {
			if s.state.Products[i].ID == p.ID {
				s.state.Products[i] = p.Clone()
				break
			}
		}
		if s.state.Current != nil && s.state.Current.ID == p.ID {
			cp := p.Clone()
			s.state.Current = &cp
		}
	})
}

func (s *Slice) DeleteProduct(ctx context.Context, id string) error {
	_, err := slice.Run(ctx, s.Base, "", func(ctx context.Context) (string, error) {
		return id, s.svc.DeleteProduct(ctx, id)
	}, func(id string) {
		kept := s.state.Products[:0:0]
		for _, p := range s.state.Products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		s.state.Products = kept
	})
	return err
}

// SetFilter merges patch into the stored filter. It does not fetch.
func (s *Slice) SetFilter(patch Filter) {
	s.Update(func() { s.state.Filter = s.state.Filter.Merge(patch.clone()) })
}

func (s *Slice) ClearCurrentProduct() {
	s.Update(func() { s.state.Current = nil })
}

func (s *Slice) setCurrent(p *Product) {
	cp := p.Clone()
	s.state.Current = &cp
}

func cloneProducts(in []Product) []Product {
	if in == nil {
		return nil
	}
	out := make([]Product, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}
