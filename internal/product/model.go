package product

import "time"

type Status int

const (
	StatusDraft        Status = 1
	StatusActive       Status = 2
	StatusInactive     Status = 3
	StatusOutOfStock   Status = 4
	StatusDiscontinued Status = 5
)

func (s Status) String() string {
	switch s {
	case StatusDraft:
		return "Draft"
	case StatusActive:
		return "Active"
	case StatusInactive:
		return "Inactive"
	case StatusOutOfStock:
		return "OutOfStock"
	case StatusDiscontinued:
		return "Discontinued"
	default:
		return "Unknown"
	}
}

type Type int

const (
	TypePhysical Type = 1
	TypeDigital  Type = 2
	TypeService  Type = 3
)

type Product struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Description      *string   `json:"description,omitempty"`
	ShortDescription *string   `json:"shortDescription,omitempty"`
	Price            float64   `json:"price"`
	CompareAtPrice   *float64  `json:"compareAtPrice,omitempty"`
	SKU              string    `json:"sku"`
	StockQuantity    int       `json:"stockQuantity"`
	Status           Status    `json:"status"`
	Type             Type      `json:"type"`
	IsFeatured       bool      `json:"isFeatured"`
	AverageRating    float64   `json:"averageRating"`
	ReviewCount      int       `json:"reviewCount"`
	MainImageURL     *string   `json:"mainImageUrl,omitempty"`
	ImageURLs        []string  `json:"imageUrls"`
	CategoryID       string    `json:"categoryId"`
	CategoryName     string    `json:"categoryName"`
	VendorID         string    `json:"vendorId"`
	VendorName       string    `json:"vendorName"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (p Product) InStock() bool {
	return p.StockQuantity > 0 && p.Status != StatusOutOfStock
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	p.ImageURLs = append([]string(nil), p.ImageURLs...)
	return p
}

type CreateProductRequest struct {
	Name              string   `json:"name"`
	Description       *string  `json:"description,omitempty"`
	ShortDescription  *string  `json:"shortDescription,omitempty"`
	Price             float64  `json:"price"`
	CompareAtPrice    *float64 `json:"compareAtPrice,omitempty"`
	Cost              *float64 `json:"cost,omitempty"`
	SKU               string   `json:"sku"`
	StockQuantity     int      `json:"stockQuantity"`
	LowStockThreshold *int     `json:"lowStockThreshold,omitempty"`
	Type              Type     `json:"type"`
	IsFeatured        bool     `json:"isFeatured"`
	MainImageURL      *string  `json:"mainImageUrl,omitempty"`
	ImageURLs         []string `json:"imageUrls,omitempty"`
	MetaTitle         *string  `json:"metaTitle,omitempty"`
	MetaDescription   *string  `json:"metaDescription,omitempty"`
	MetaKeywords      *string  `json:"metaKeywords,omitempty"`
	CategoryID        string   `json:"categoryId"`
}

// UpdateProductRequest is a partial update; nil fields are not sent.
type UpdateProductRequest struct {
	Name             *string  `json:"name,omitempty"`
	Description      *string  `json:"description,omitempty"`
	ShortDescription *string  `json:"shortDescription,omitempty"`
	Price            *float64 `json:"price,omitempty"`
	CompareAtPrice   *float64 `json:"compareAtPrice,omitempty"`
	SKU              *string  `json:"sku,omitempty"`
	StockQuantity    *int     `json:"stockQuantity,omitempty"`
	Type             *Type    `json:"type,omitempty"`
	IsFeatured       *bool    `json:"isFeatured,omitempty"`
	MainImageURL     *string  `json:"mainImageUrl,omitempty"`
	ImageURLs        []string `json:"imageUrls,omitempty"`
	CategoryID       *string  `json:"categoryId,omitempty"`
}

func (r UpdateProductRequest) Empty() bool {
	return r.Name == nil &&
		r.Description == nil &&
		r.ShortDescription == nil &&
		r.Price == nil &&
		r.CompareAtPrice == nil &&
		r.SKU == nil &&
		r.StockQuantity == nil &&
		r.Type == nil &&
		r.IsFeatured == nil &&
		r.MainImageURL == nil &&
		r.ImageURLs == nil &&
		r.CategoryID == nil
}
