package appstate

import (
	"edumart/internal/i18n"
)

type Page string

const (
	PageHome         Page = "home"
	PageLogin        Page = "login"
	PageProduct      Page = "product"
	PageCart         Page = "cart"
	PageWishlist     Page = "wishlist"
	PageCheckout     Page = "checkout"
	PageConfirmation Page = "confirmation"
	PageOrders       Page = "orders"
	PageProfile      Page = "profile"
	PageVendor       Page = "vendor"
	PageNotFound     Page = "404"
	PageServerError  Page = "500"
)

var pages = map[Page]bool{
	PageHome: true, PageLogin: true, PageProduct: true, PageCart: true,
	PageWishlist: true, PageCheckout: true, PageConfirmation: true,
	PageOrders: true, PageProfile: true, PageVendor: true,
	PageNotFound: true, PageServerError: true,
}

// Resolve maps a navigation target to the page the view renders: itself when
// known, PageNotFound otherwise.
func Resolve(p Page) Page {
	if pages[p] {
		return p
	}
	return PageNotFound
}

// ShowsBreadcrumbs reports whether the page renders a breadcrumb trail.
func (p Page) ShowsBreadcrumbs() bool {
	switch Resolve(p) {
	case PageHome, PageNotFound, PageServerError, PageLogin:
		return false
	}
	return true
}

// AllCategories selects every product.
const AllCategories = "All"

type Product struct {
	ID            string  `yaml:"id" json:"id"`
	Name          string  `yaml:"name" json:"name"`
	NameAr        string  `yaml:"nameAr" json:"nameAr"`
	Description   string  `yaml:"description" json:"description"`
	DescriptionAr string  `yaml:"descriptionAr" json:"descriptionAr"`
	Price         float64 `yaml:"price" json:"price"`
	Category      string  `yaml:"category" json:"category"`
	CategoryAr    string  `yaml:"categoryAr" json:"categoryAr"`
	Image         string  `yaml:"image" json:"image"`
	Stock         int     `yaml:"stock" json:"stock"`
	Rating        float64 `yaml:"rating" json:"rating"`
	Reviews       int     `yaml:"reviews" json:"reviews"`
	InStock       bool    `yaml:"inStock" json:"inStock"`
	Vendor        string  `yaml:"vendor" json:"vendor"`
}

// LocalName picks the product name for lang, falling back to English.
func (p Product) LocalName(lang i18n.Language) string {
	if lang == i18n.Arabic && p.NameAr != "" {
		return p.NameAr
	}
	return p.Name
}

func (p Product) LocalCategory(lang i18n.Language) string {
	if lang == i18n.Arabic && p.CategoryAr != "" {
		return p.CategoryAr
	}
	return p.Category
}

type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
)

type User struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Avatar *string `json:"avatar,omitempty"`
	Role   Role    `json:"role"`
}

type Order struct {
	ID     string     `json:"id"`
	Date   string     `json:"date"`
	Total  float64    `json:"total"`
	Status string     `json:"status"`
	Items  []CartItem `json:"items"`
}
