package product

import "edumart/internal/api"

const (
	DefaultPageSize = 12
	MaxPageSize     = 100
	DefaultSortBy   = "CreatedAt"
)

// Filter selects a page of products. Nil fields are left out of the query.
type Filter struct {
	CategoryID     *string  `json:"categoryId,omitempty"`
	VendorID       *string  `json:"vendorId,omitempty"`
	MinPrice       *float64 `json:"minPrice,omitempty"`
	MaxPrice       *float64 `json:"maxPrice,omitempty"`
	SearchTerm     *string  `json:"searchTerm,omitempty"`
	Status         *Status  `json:"status,omitempty"`
	IsFeatured     *bool    `json:"isFeatured,omitempty"`
	SortBy         *string  `json:"sortBy,omitempty"`
	SortDescending *bool    `json:"sortDescending,omitempty"`
	PageNumber     int      `json:"pageNumber"`
	PageSize       int      `json:"pageSize"`
}

// DefaultFilter is the first page, newest first.
func DefaultFilter() Filter {
	sortBy := DefaultSortBy
	desc := true
	return Filter{
		PageNumber:     1,
		PageSize:       DefaultPageSize,
		SortBy:         &sortBy,
		SortDescending: &desc,
	}
}

// Merge overlays the fields set in patch onto f.
func (f Filter) Merge(patch Filter) Filter {
	if patch.CategoryID != nil {
		f.CategoryID = patch.CategoryID
	}
	if patch.VendorID != nil {
		f.VendorID = patch.VendorID
	}
	if patch.MinPrice != nil {
		f.MinPrice = patch.MinPrice
	}
	if patch.MaxPrice != nil {
		f.MaxPrice = patch.MaxPrice
	}
	if patch.SearchTerm != nil {
		f.SearchTerm = patch.SearchTerm
	}
	if patch.Status != nil {
		f.Status = patch.Status
	}
	if patch.IsFeatured != nil {
		f.IsFeatured = patch.IsFeatured
	}
	if patch.SortBy != nil {
		f.SortBy = patch.SortBy
	}
	if patch.SortDescending != nil {
		f.SortDescending = patch.SortDescending
	}
	if patch.PageNumber > 0 {
		f.PageNumber = patch.PageNumber
	}
	if patch.PageSize > 0 {
		f.PageSize = patch.PageSize
	}
	return f
}

func (f Filter) normalize() Filter {
	if f.PageNumber <= 0 {
		f.PageNumber = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = DefaultPageSize
	} else if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
	return f
}

// Query serializes the filter. Absent and zero-valued optional filters are
// omitted; the page parameters are always sent.
func (f Filter) Query() *api.Query {
	f = f.normalize()
	q := api.NewQuery().
		StringPtr("categoryId", f.CategoryID).
		StringPtr("vendorId", f.VendorID)
	if f.MinPrice != nil && *f.MinPrice != 0 {
		q.FloatPtr("minPrice", f.MinPrice)
	}
	if f.MaxPrice != nil && *f.MaxPrice != 0 {
		q.FloatPtr("maxPrice", f.MaxPrice)
	}
	q.StringPtr("searchTerm", f.SearchTerm)
	if f.Status != nil && *f.Status != 0 {
		q.Int("status", int(*f.Status))
	}
	q.BoolPtr("isFeatured", f.IsFeatured).
		StringPtr("sortBy", f.SortBy).
		BoolPtr("sortDescending", f.SortDescending).
		Int("pageNumber", f.PageNumber).
		Int("pageSize", f.PageSize)
	return q
}

func (f Filter) clone() Filter {
	cp := f
	cp.CategoryID = clonePtr(f.CategoryID)
	cp.VendorID = clonePtr(f.VendorID)
	cp.MinPrice = clonePtr(f.MinPrice)
	cp.MaxPrice = clonePtr(f.MaxPrice)
	cp.SearchTerm = clonePtr(f.SearchTerm)
	cp.Status = clonePtr(f.Status)
	cp.IsFeatured = clonePtr(f.IsFeatured)
	cp.SortBy = clonePtr(f.SortBy)
	cp.SortDescending = clonePtr(f.SortDescending)
	return cp
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
