// Package fakeshop is a stateful in-memory storefront backend on top of
// apitest, for tests that drive the whole domain store or the CLI.
package fakeshop

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"edumart/internal/address"
	"edumart/internal/api"
	"edumart/internal/apitest"
	"edumart/internal/auth"
	"edumart/internal/cart"
	"edumart/internal/category"
	"edumart/internal/order"
	"edumart/internal/product"
	"edumart/internal/utils"
	"edumart/internal/wishlist"

	"github.com/golang-jwt/jwt/v5"
)

const signingKey = "fakeshop"

type account struct {
	password string
	user     auth.User
}

type Shop struct {
	*apitest.Server

	mu         sync.Mutex
	accounts   map[string]*account
	tokens     map[string]string
	products   []product.Product
	categories []category.Category
	carts      map[string]*cart.Cart
	wishlists  map[string]*wishlist.Wishlist
	orders     map[string][]order.Order
	addresses  map[string][]address.Address
	seq        int
}

// New starts a shop seeded with a small catalog and one customer,
// ann@edumart.test / secret.
func New(t testing.TB) *Shop {
	s := &Shop{
		Server:    apitest.NewServer(t),
		accounts:  make(map[string]*account),
		tokens:    make(map[string]string),
		carts:     make(map[string]*cart.Cart),
		wishlists: make(map[string]*wishlist.Wishlist),
		orders:    make(map[string][]order.Order),
		addresses: make(map[string][]address.Address),
	}
	s.seed()
	s.routes()
	return s
}

func (s *Shop) AddUser(email, password string, u auth.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.Email = email
	if u.ID == "" {
		u.ID = s.nextID("u")
	}
	s.accounts[email] = &account{password: password, user: u}
}

// RevokeTokens makes every issued token answer 401 from now on.
func (s *Shop) RevokeTokens() {
	s.mu.Lock()
	s.tokens = make(map[string]string)
	s.mu.Unlock()
}

func (s *Shop) CartOf(email string) cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.cartFor(email).Clone()
}

func (s *Shop) ProductIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, len(s.products))
	for i, p := range s.products {
		ids[i] = p.ID
	}
	return ids
}

func (s *Shop) seed() {
	created := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	s.categories = []category.Category{
		{ID: "c-stationery", Name: "Stationery", Slug: "stationery", SubCategories: []category.Category{
			{ID: "c-pens", Name: "Pens", Slug: "pens", ParentCategoryID: utils.Ptr("c-stationery")},
		}},
		{ID: "c-books", Name: "Books", Slug: "books"},
	}
	s.products = []product.Product{
		{ID: "p-1", Name: "Scientific Calculator", Slug: "scientific-calculator", Price: 10, StockQuantity: 20, Status: product.StatusActive, CategoryID: "c-stationery", CategoryName: "Stationery", IsFeatured: true, CreatedAt: created},
		{ID: "p-2", Name: "Gel Pen Set", Slug: "gel-pen-set", Price: 5, StockQuantity: 100, Status: product.StatusActive, CategoryID: "c-pens", CategoryName: "Pens", CreatedAt: created.Add(time.Hour)},
		{ID: "p-3", Name: "World Atlas", Slug: "world-atlas", Price: 25, StockQuantity: 2, Status: product.StatusActive, CategoryID: "c-books", CategoryName: "Books", CreatedAt: created.Add(2 * time.Hour)},
	}
	s.accounts["ann@edumart.test"] = &account{
		password: "secret",
		user:     auth.User{ID: "u-ann", Email: "ann@edumart.test", FirstName: "Ann", LastName: "Lee", Role: auth.RoleCustomer, Status: auth.StatusActive},
	}
}

func (s *Shop) routes() {
	s.Handle(http.MethodPost, "/Auth/login", s.login)
	s.Handle(http.MethodPost, "/Auth/register", s.register)
	s.Handle(http.MethodGet, "/Auth/me", s.authed(s.me))
	s.Handle(http.MethodPut, "/Auth/update-profile", s.authed(s.updateProfile))
	s.Handle(http.MethodPost, "/Auth/change-password", s.authed(s.changePassword))

	s.Handle(http.MethodGet, "/Products", s.listProducts)
	s.Handle(http.MethodGet, "/Products/slug/{slug}", s.productBySlug)
	s.Handle(http.MethodGet, "/Products/{id}", s.productByID)

	s.Handle(http.MethodGet, "/Categories", s.listCategories)
	s.Handle(http.MethodGet, "/Categories/{id}", s.categoryByID)
	s.Handle(http.MethodPost, "/Categories", s.authed(s.createCategory))

	s.Handle(http.MethodGet, "/Cart", s.authed(s.getCart))
	s.Handle(http.MethodPost, "/Cart", s.authed(s.addToCart))
	s.Handle(http.MethodPut, "/Cart/{id}", s.authed(s.updateCartItem))
	s.Handle(http.MethodDelete, "/Cart/{id}", s.authed(s.removeCartItem))
	s.Handle(http.MethodDelete, "/Cart", s.authed(s.clearCart))

	s.Handle(http.MethodGet, "/Wishlist", s.authed(s.getWishlist))
	s.Handle(http.MethodPost, "/Wishlist", s.authed(s.addToWishlist))
	s.Handle(http.MethodDelete, "/Wishlist/{id}", s.authed(s.removeFromWishlist))

	s.Handle(http.MethodGet, "/Orders", s.authed(s.listOrders))
	s.Handle(http.MethodGet, "/Orders/{id}", s.authed(s.orderByID))
	s.Handle(http.MethodPost, "/Orders", s.authed(s.createOrder))

	s.Handle(http.MethodGet, "/Addresses", s.authed(s.listAddresses))
	s.Handle(http.MethodPost, "/Addresses", s.authed(s.createAddress))
}

type authedFunc func(r *http.Request, email string) apitest.Reply

func (s *Shop) authed(fn authedFunc) apitest.HandlerFunc {
	return func(r *http.Request) apitest.Reply {
		s.mu.Lock()
		email, ok := s.tokens[apitest.Bearer(r)]
		s.mu.Unlock()
		if !ok {
			return apitest.Fail(http.StatusUnauthorized, "Unauthorized")
		}
		return fn(r, email)
	}
}

// ---------- auth ----------

func (s *Shop) issue(email string) (string, time.Time, error) {
	exp := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   email,
		ID:        s.nextID("jti"),
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte(signingKey))
	if err != nil {
		return "", time.Time{}, err
	}
	s.tokens[token] = email
	return token, exp, nil
}

func (s *Shop) login(r *http.Request) apitest.Reply {
	var req auth.LoginRequest
	if err := apitest.Decode(r, &req); err != nil {
		return apitest.Fail(http.StatusBadRequest, "Invalid request")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[req.Email]
	if !ok || acc.password != req.Password {
		return apitest.Fail(http.StatusBadRequest, "Invalid email or password")
	}
	token, exp, err := s.issue(req.Email)
	if err != nil {
		return apitest.Fail(http.StatusInternalServerError, err.Error())
	}
	return apitest.OK(auth.LoginResponse{Token: token, RefreshToken: "refresh-" + token[:8], Expiration: exp, User: acc.user})
}

func (s *Shop) register(r *http.Request) apitest.Reply {
	var req auth.RegisterRequest
	if err := apitest.Decode(r, &req); err != nil {
		return apitest.Fail(http.StatusBadRequest, "Invalid request")
	}

	var errs []string
	if !strings.Contains(req.Email, "@") {
		errs = append(errs, "Email is invalid")
	}
	if len(req.Password) < 6 {
		errs = append(errs, "Password must be at least 6 characters")
	}
	if len(errs) > 0 {
		return apitest.Fail(http.StatusBadRequest, "", errs...)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[req.Email]; exists {
		return apitest.Fail(http.StatusConflict, "Email already registered")
	}
	u := auth.User{
		ID:          s.nextID("u"),
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
		Status:      auth.StatusActive,
		CreatedAt:   time.Now().UTC(),
	}
	s.accounts[req.Email] = &account{password: req.Password, user: u}
	token, exp, err := s.issue(req.Email)
	if err != nil {
		return apitest.Fail(http.StatusInternalServerError, err.Error())
	}
	return apitest.OK(auth.LoginResponse{Token: token, Expiration: exp, User: u})
}

func (s *Shop) me(r *http.Request, email string) apitest.Reply {
	s.mu.Lock()
	defer s.mu.Unlock()
	return apitest.OK(s.accounts[email].user)
}

func (s *Shop) updateProfile(r *http.Request, email string) apitest.Reply {
	var req auth.UpdateProfileRequest
	if err := apitest.Decode(r, &req); err != nil {
		return apitest.Fail(http.StatusBadRequest, "Invalid request")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	acc := s.accounts[email]
	acc.user.FirstName = req.FirstName
	acc.user.LastName = req.LastName
	acc.user.PhoneNumber = req.PhoneNumber
	acc.user.ProfileImageURL = req.ProfileImageURL
	return apitest.OK(acc.user)
}

func (s *Shop) changePassword(r *http.Request, email string) apitest.Reply {
	var req auth.ChangePasswordRequest
	if err := apitest.Decode(r, &req); err != nil {
		return apitest.Fail(http.StatusBadRequest, "Invalid request")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	acc := s.accounts[email]
	if acc.password != req.CurrentPassword {
		return apitest.Fail(http.StatusBadRequest, "Current password is incorrect")
	}
	acc.password = req.NewPassword
	return apitest.OK(true)
}

// ---------- catalog ----------

func (s *Shop) listProducts(r *http.Request) apitest.Reply {
	q := r.URL.Query()
	s.mu.Lock()
	var matched []product.Product
	for _, p := range s.products {
		if id := q.Get("categoryId"); id != "" && p.CategoryID != id {
			continue
		}
		if term := strings.ToLower(q.Get("searchTerm")); term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		if q.Get("isFeatured") == "true" && !p.IsFeatured {
			continue
		}
		if lo, err := strconv.ParseFloat(q.Get("minPrice"), 64); err == nil && p.Price < lo {
			continue
		}
		if hi, err := strconv.ParseFloat(q.Get("maxPrice"), 64); err == nil && p.Price > hi {
			continue
		}
		matched = append(matched, p)
	}
	s.mu.Unlock()

	desc := q.Get("sortDescending") == "true"
	switch q.Get("sortBy") {
	case "Price":
		sort.SliceStable(matched, func(i, j int) bool { return (matched[i].Price < matched[j].Price) != desc })
	case "Name":
		sort.SliceStable(matched, func(i, j int) bool { return (matched[i].Name < matched[j].Name) != desc })
	default:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].CreatedAt.Before(matched[j].CreatedAt) != desc })
	}

	page := atoi(q.Get("pageNumber"), 1)
	size := atoi(q.Get("pageSize"), product.DefaultPageSize)
	total := len(matched)
	pages := (total + size - 1) / size
	start := min((page-1)*size, total)
	end := min(start+size, total)

	return apitest.OK(api.PagedResponse[product.Product]{
		Data:            matched[start:end],
		PageNumber:      page,
		PageSize:        size,
		TotalPages:      pages,
		TotalRecords:    total,
		HasPreviousPage: page > 1,
		HasNextPage:     page < pages,
	})
}

func (s *Shop) productByID(r *http.Request) apitest.Reply {
	id := apitest.Vars(r)["id"]
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return apitest.OK(p)
		}
	}
	return apitest.Fail(http.StatusNotFound, "Product not found")
}

func (s *Shop) productBySlug(r *http.Request) apitest.Reply {
	slug := apitest.Vars(r)["slug"]
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.Slug == slug {
			return apitest.OK(p)
		}
	}
	return apitest.Fail(http.StatusNotFound, "Product not found")
}

func (s *Shop) listCategories(r *http.Request) apitest.Reply {
	s.mu.Lock()
	defer s.mu.Unlock()
	return apitest.OK(s.categories)
}

func (s *Shop) categoryByID(r *http.Request) apitest.Reply {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := category.Find(s.categories, apitest.Vars(r)["id"]); ok {
		return apitest.OK(c)
	}
	return apitest.Fail(http.StatusNotFound, "Category not found")
}

func (s *Shop) createCategory(r *http.Request, _ string) apitest.Reply {
	var req category.CreateCategoryRequest
	if err := apitest.Decode(r, &req); err != nil {
		return apitest.Fail(http.StatusBadRequest, "Invalid request")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c := category.Category{
		ID:               s.nextID("c"),
		Name:             req.Name,
		Slug:             utils.Slugify(req.Name),
		Description:      req.Description,
		ParentCategoryID: req.ParentCategoryID,
	}
	s.categories, _ = category.Attach(s.categories, c)
	return apitest.OK(c)
}

// ---------- cart ----------

func (s *Shop) cartFor(email string) *cart.Cart {
	c, ok := s.carts[email]
	if !ok {
		c = cart.EmptyCart()
		s.carts[email] = c
	}
	return c
}

func (s *Shop) findProduct(id string) (product.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return product.Product{}, false
}

func (s *Shop) getCart(r *http.Request, email string) apitest.Reply {
	s.mu.Lock()
	defer s.mu.Unlock()
	return apitest.OK(s.cartFor(email).Clone())
}

func (s *Shop) addToCart(r *http.Request, email string) apitest.Reply {
	var req cart.AddToCartRequest
	if err := apitest.Decode(r, &req); err != nil {
		return apitest.Fail(http.StatusBadRequest, "Invalid request")
	}
	if req.Quantity < 1 {
		return apitest.Fail(http.StatusBadRequest, "", "Quantity must be at least 1")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.findProduct(req.ProductID)
	if !ok {
		return apitest.Fail(http.StatusNotFound, "Product not found")
	}
	c := s.cartFor(email)
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			if c.Items[i].Quantity+req.Quantity > p.StockQuantity {
				return apitest.Reject("Insufficient stock")
			}
			c.Items[i].Quantity += req.Quantity
			c.Recalculate()
			return apitest.OK(c.Clone())
		}
	}
	if req.Quantity > p.StockQuantity {
		return apitest.Reject("Insufficient stock")
	}
	c.Items = append(c.Items, cart.CartItem{
		ID:            "ci-" + p.ID,
		ProductID:     p.ID,
		ProductName:   p.Name,
		Price:         p.Price,
		Quantity:      req.Quantity,
		StockQuantity: p.StockQuantity,
	})
	c.Recalculate()
	return apitest.OK(c.Clone())
}

func (s *Shop) updateCartItem(r *http.Request, email string) apitest.Reply {
	var req cart.UpdateCartItemRequest
	if err := apitest.Decode(r, &req); err != nil {
		return apitest.Fail(http.StatusBadRequest, "Invalid request")
	}
	id := apitest.Vars(r)["id"]
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cartFor(email)
	for i := range c.Items {
		if c.Items[i].ID == id {
			if req.Quantity > c.Items[i].StockQuantity {
				return apitest.Reject("Insufficient stock")
			}
			c.Items[i].Quantity = req.Quantity
			c.Recalculate()
			return apitest.OK(c.Clone())
		}
	}
	return apitest.Fail(http.StatusNotFound, "Cart item not found")
}

func (s *Shop) removeCartItem(r *http.Request, email string) apitest.Reply {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.cartFor(email).Remove(apitest.Vars(r)["id"]) {
		return apitest.Fail(http.StatusNotFound, "Cart item not found")
	}
	return apitest.OK(true)
}

func (s *Shop) clearCart(r *http.Request, email string) apitest.Reply {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[email] = cart.EmptyCart()
	return apitest.OK(true)
}

// ---------- wishlist ----------

func (s *Shop) getWishlist(r *http.Request, email string) apitest.Reply {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wishlists[email]
	if !ok {
		return apitest.OK(wishlist.Wishlist{Items: []wishlist.Item{}})
	}
	return apitest.OK(w.Clone())
}

func (s *Shop) addToWishlist(r *http.Request, email string) apitest.Reply {
	var req wishlist.AddRequest
	if err := apitest.Decode(r, &req); err != nil {
		return apitest.Fail(http.StatusBadRequest, "Invalid request")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.findProduct(req.ProductID)
	if !ok {
		return apitest.Fail(http.StatusNotFound, "Product not found")
	}
	w, ok := s.wishlists[email]
	if !ok {
		w = &wishlist.Wishlist{}
		s.wishlists[email] = w
	}
	w.Items = append(w.Items, wishlist.Item{
		ID:          s.nextID("w"),
		ProductID:   p.ID,
		ProductName: p.Name,
		Price:       p.Price,
		InStock:     p.InStock(),
		AddedAt:     time.Now().UTC(),
	})
	return apitest.OK(true)
}

func (s *Shop) removeFromWishlist(r *http.Request, email string) apitest.Reply {
	id := apitest.Vars(r)["id"]
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wishlists[email]
	if !ok {
		return apitest.Fail(http.StatusNotFound, "Wishlist item not found")
	}
	kept := w.Items[:0]
	for _, it := range w.Items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	w.Items = kept
	return apitest.OK(true)
}

// ---------- orders ----------

func (s *Shop) listOrders(r *http.Request, email string) apitest.Reply {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.orders[email]
	if list == nil {
		list = []order.Order{}
	}
	return apitest.OK(list)
}

func (s *Shop) orderByID(r *http.Request, email string) apitest.Reply {
	id := apitest.Vars(r)["id"]
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders[email] {
		if o.ID == id {
			return apitest.OK(o)
		}
	}
	return apitest.Fail(http.StatusNotFound, "Order not found")
}

func (s *Shop) createOrder(r *http.Request, email string) apitest.Reply {
	var req order.CreateOrderRequest
	if err := apitest.Decode(r, &req); err != nil {
		return apitest.Fail(http.StatusBadRequest, "Invalid request")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	shipping, ok := s.findAddress(email, req.ShippingAddressID)
	if !ok {
		return apitest.Fail(http.StatusBadRequest, "Shipping address not found")
	}
	billing, ok := s.findAddress(email, req.BillingAddressID)
	if !ok {
		return apitest.Fail(http.StatusBadRequest, "Billing address not found")
	}
	c := s.cartFor(email)
	if len(c.Items) == 0 {
		return apitest.Reject("Cart is empty")
	}

	items := make([]order.Item, len(c.Items))
	for i, it := range c.Items {
		items[i] = order.Item{
			ID:          s.nextID("oi"),
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Total:       it.Total,
		}
	}
	o := order.Order{
		ID:              s.nextID("o"),
		OrderNumber:     fmt.Sprintf("EM-%04d", len(s.orders[email])+1),
		Status:          order.StatusPending,
		PaymentStatus:   order.PaymentStatusPending,
		PaymentMethod:   req.PaymentMethod,
		Subtotal:        c.Subtotal,
		Tax:             c.Tax,
		Total:           c.Total,
		CreatedAt:       time.Now().UTC(),
		OrderItems:      items,
		ShippingAddress: shipping,
		BillingAddress:  billing,
	}
	s.orders[email] = append([]order.Order{o}, s.orders[email]...)
	s.carts[email] = cart.EmptyCart()
	return apitest.OK(o)
}

func (s *Shop) findAddress(email, id string) (address.Address, bool) {
	for _, a := range s.addresses[email] {
		if a.ID == id {
			return a, true
		}
	}
	return address.Address{}, false
}

func (s *Shop) listAddresses(r *http.Request, email string) apitest.Reply {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.addresses[email]
	if list == nil {
		list = []address.Address{}
	}
	return apitest.OK(list)
}

func (s *Shop) createAddress(r *http.Request, email string) apitest.Reply {
	var req address.CreateAddressRequest
	if err := apitest.Decode(r, &req); err != nil {
		return apitest.Fail(http.StatusBadRequest, "Invalid request")
	}
	if req.Address1 == "" || req.City == "" {
		return apitest.Fail(http.StatusBadRequest, "", "Address1 is required", "City is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a := address.Address{
		ID:          s.nextID("a"),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Company:     req.Company,
		Address1:    req.Address1,
		Address2:    req.Address2,
		City:        req.City,
		State:       req.State,
		PostalCode:  req.PostalCode,
		Country:     req.Country,
		PhoneNumber: req.PhoneNumber,
		IsDefault:   req.IsDefault || len(s.addresses[email]) == 0,
	}
	s.addresses[email] = append(s.addresses[email], a)
	return apitest.OK(a)
}

// nextID must be called with mu held.
func (s *Shop) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

func atoi(v string, fallback int) int {
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
