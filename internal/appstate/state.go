// Package appstate is the local UI context: navigation, a demo catalog and a
// synchronous in-memory cart, wishlist and order list. Nothing here touches
// the network; it backs the storefront's offline mode.
package appstate

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"edumart/internal/logger"
	"edumart/internal/session"

	"go.uber.org/zap"
)

type Option func(*State)

// WithCatalog replaces the embedded demo catalog.
func WithCatalog(products []Product) Option {
	return func(s *State) { s.products = append([]Product(nil), products...) }
}

func WithClock(now func() time.Time) Option {
	return func(s *State) { s.now = now }
}

// State is safe for concurrent use. Every getter returns a copy.
type State struct {
	mu  sync.RWMutex
	now func() time.Time

	page         Page
	user         *User
	products     []Product
	selected     *Product
	cart         []CartItem
	wishlist     []Product
	orders       []Order
	searchQuery  string
	category     string
	loadingUntil time.Time
}

func New(opts ...Option) *State {
	s := &State{
		now:      time.Now,
		page:     PageHome,
		category: AllCategories,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.products == nil {
		s.products = DefaultCatalog()
	}
	return s
}

// ---------- navigation ----------

// SetCurrentPage stores the target as given; views pass it through Resolve.
func (s *State) SetCurrentPage(p Page) {
	s.mu.Lock()
	s.page = p
	s.mu.Unlock()
}

func (s *State) CurrentPage() Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page
}

// ---------- user ----------

// Login signs in a demo customer without checking the password.
func (s *State) Login(email, _ string) User {
	u := User{ID: "1", Name: "John Doe", Email: email, Role: RoleCustomer}

	s.mu.Lock()
	s.user = &u
	s.page = PageHome
	s.mu.Unlock()
	return u
}

func (s *State) Logout() {
	s.mu.Lock()
	s.user = nil
	s.page = PageHome
	s.mu.Unlock()
}

func (s *State) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// HandleSessionEvent mirrors a remote session teardown into the local
// context: a rejected credential sends the user to the login page.
func (s *State) HandleSessionEvent(ev session.Event) {
	switch ev.Kind {
	case session.EventUnauthorized:
		s.mu.Lock()
		s.user = nil
		s.page = PageLogin
		s.mu.Unlock()
	case session.EventSignedOut:
		s.Logout()
	}
}

// ---------- catalog ----------

func (s *State) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Product(nil), s.products...)
}

// Product looks a catalog entry up by id.
func (s *State) Product(id string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func (s *State) SetSelectedProduct(p *Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p == nil {
		s.selected = nil
		return
	}
	cp := *p
	s.selected = &cp
}

func (s *State) SelectedProduct() *Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return nil
	}
	p := *s.selected
	return &p
}

func (s *State) SetSearchQuery(q string) {
	s.mu.Lock()
	s.searchQuery = q
	s.mu.Unlock()
}

func (s *State) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchQuery
}

// SetSelectedCategory filters by category name; "" resets to AllCategories.
func (s *State) SetSelectedCategory(c string) {
	if c == "" {
		c = AllCategories
	}
	s.mu.Lock()
	s.category = c
	s.mu.Unlock()
}

func (s *State) SelectedCategory() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.category
}

// Categories lists AllCategories followed by each catalog category once, in
// catalog order.
func (s *State) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []string{AllCategories}
	seen := map[string]bool{}
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// FilteredProducts applies the selected category (exact match) and the
// search query (case-insensitive substring of name or description).
func (s *State) FilteredProducts() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(s.searchQuery)
	var out []Product
	for _, p := range s.products {
		if s.category != AllCategories && p.Category != s.category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ---------- simulated loading ----------

// BeginLoading marks the view as loading for d.
func (s *State) BeginLoading(d time.Duration) {
	s.mu.Lock()
	s.loadingUntil = s.now().Add(d)
	s.mu.Unlock()
}

func (s *State) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now().Before(s.loadingUntil)
}

// ---------- cart ----------

// AddToCart adds one unit, merging into the existing line for the product.
func (s *State) AddToCart(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].Product.ID == p.ID {
			s.cart[i].Quantity++
			return
		}
	}
	s.cart = append(s.cart, CartItem{Product: p, Quantity: 1})
}

func (s *State) RemoveFromCart(productID string) {
	s.mu.Lock()
	s.removeLocked(productID)
	s.mu.Unlock()
}

func (s *State) removeLocked(productID string) {
	kept := s.cart[:0:0]
	for _, it := range s.cart {
		if it.Product.ID != productID {
			kept = append(kept, it)
		}
	}
	s.cart = kept
}

// UpdateQuantity sets the line quantity; n <= 0 removes the line.
func (s *State) UpdateQuantity(productID string, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n <= 0 {
		s.removeLocked(productID)
		return
	}
	for i := range s.cart {
		if s.cart[i].Product.ID == productID {
			s.cart[i].Quantity = n
		}
	}
}

func (s *State) ClearCart() {
	s.mu.Lock()
	s.cart = nil
	s.mu.Unlock()
}

func (s *State) Cart() []CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]CartItem(nil), s.cart...)
}

// CartTotal is the sum of price times quantity; no tax is applied.
func (s *State) CartTotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cartTotal(s.cart)
}

// ItemCount is the number of distinct lines.
func (s *State) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cart)
}

func cartTotal(items []CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Product.Price * float64(it.Quantity)
	}
	return total
}

// ---------- wishlist ----------

func (s *State) AddToWishlist(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.wishlist {
		if w.ID == p.ID {
			return
		}
	}
	s.wishlist = append(s.wishlist, p)
}

func (s *State) RemoveFromWishlist(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.wishlist[:0:0]
	for _, w := range s.wishlist {
		if w.ID != productID {
			kept = append(kept, w)
		}
	}
	s.wishlist = kept
}

func (s *State) InWishlist(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.wishlist {
		if w.ID == productID {
			return true
		}
	}
	return false
}

func (s *State) Wishlist() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Product(nil), s.wishlist...)
}

// ---------- orders ----------

// PlaceOrder snapshots the cart into a pending order, prepends it, empties
// the cart and navigates to the confirmation page.
func (s *State) PlaceOrder() Order {
	s.mu.Lock()
	o := Order{
		ID:     fmt.Sprintf("ORD-%03d", len(s.orders)+1),
		Date:   s.now().UTC().Format(time.DateOnly),
		Total:  cartTotal(s.cart),
		Status: "pending",
		Items:  append([]CartItem(nil), s.cart...),
	}
	s.orders = append([]Order{o}, s.orders...)
	s.cart = nil
	s.page = PageConfirmation
	s.mu.Unlock()

	logger.L().Debug("demo order placed",
		zap.String("layer", "appstate"),
		zap.String("order_id", o.ID),
		zap.Int("items", len(o.Items)),
		zap.Float64("total", o.Total),
	)
	return o
}

func (s *State) Orders() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Order, len(s.orders))
	for i, o := range s.orders {
		o.Items = append([]CartItem(nil), o.Items...)
		out[i] = o
	}
	return out
}
