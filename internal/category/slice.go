package category

import (
	"context"

	"edumart/internal/slice"
)

type State struct {
	slice.Status
	Categories []Category
	Current    *Category
}

type Slice struct {
	*slice.Base
	svc   Service
	state State
}

func NewSlice(svc Service) *Slice {
	return &Slice{Base: slice.NewBase("categories"), svc: svc}
}

func (s *Slice) State() State {
	var out State
	s.Read(func(st slice.Status) {
		out.Status = st
		out.Categories = cloneTree(s.state.Categories)
		if s.state.Current != nil {
			c := s.state.Current.Clone()
			out.Current = &c
		}
	})
	return out
}

func (s *Slice) FetchCategories(ctx context.Context) ([]Category, error) {
	return slice.Run(ctx, s.Base, "tree", s.svc.GetCategories, func(tree []Category) {
		s.state.Categories = cloneTree(tree)
	})
}

func (s *Slice) FetchCategoryByID(ctx context.Context, id string) (*Category, error) {
	return slice.Run(ctx, s.Base, "current", func(ctx context.Context) (*Category, error) {
		return s.svc.GetCategoryByID(ctx, id)
	}, func(c *Category) {
		cp := c.Clone()
		s.state.Current = &cp
	})
}

// CreateCategory places the new category under its parent when the parent
// is loaded, else at the top level.
func (s *Slice) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*Category, error) {
	return slice.Run(ctx, s.Base, "", func(ctx context.Context) (*Category, error) {
		return s.svc.CreateCategory(ctx, req)
	}, func(c *Category) {
		s.state.Categories, _ = Attach(s.state.Categories, c.Clone())
	})
}

// Find looks id up in the loaded tree.
func (s *Slice) Find(id string) (Category, bool) {
	var out Category
	var ok bool
	s.Read(func(slice.Status) {
		var c *Category
		if c, ok = Find(s.state.Categories, id); ok {
			out = c.Clone()
		}
	})
	return out, ok
}

// Path returns the breadcrumb chain to id in the loaded tree.
func (s *Slice) Path(id string) []Category {
	var out []Category
	s.Read(func(slice.Status) { out = cloneTree(Path(s.state.Categories, id)) })
	return out
}
