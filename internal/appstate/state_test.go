package appstate

import (
	"fmt"
	"testing"
	"time"

	"edumart/internal/i18n"
	"edumart/internal/logger"
	"edumart/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var (
	pen = Product{ID: "1", Name: "Pen", Description: "Blue ink", Price: 10, Category: "Pens & Pencils"}
	pad = Product{ID: "2", Name: "Notepad", Description: "Ruled paper", Price: 5, Category: "Notebooks"}
)

func newTestState(opts ...Option) *State {
	return New(append([]Option{WithCatalog([]Product{pen, pad})}, opts...)...)
}

func TestResolve(t *testing.T) {
	assert.Equal(t, PageCart, Resolve(PageCart))
	assert.Equal(t, PageServerError, Resolve(PageServerError))
	assert.Equal(t, PageNotFound, Resolve(Page("settings")))
	assert.Equal(t, PageNotFound, Resolve(""))

	assert.False(t, PageHome.ShowsBreadcrumbs())
	assert.False(t, Page("nowhere").ShowsBreadcrumbs())
	assert.True(t, PageCheckout.ShowsBreadcrumbs())
}

func TestState_AddToCart(t *testing.T) {
	t.Run("Same product merges", func(t *testing.T) {
		s := newTestState()
		for i := 0; i < 4; i++ {
			s.AddToCart(pen)
		}

		cart := s.Cart()
		require.Len(t, cart, 1)
		assert.Equal(t, 4, cart[0].Quantity)
	})

	t.Run("Mixed products keep insertion order", func(t *testing.T) {
		s := newTestState()
		s.AddToCart(pen)
		s.AddToCart(pad)
		s.AddToCart(pen)

		cart := s.Cart()
		require.Len(t, cart, 2)
		assert.Equal(t, "1", cart[0].Product.ID)
		assert.Equal(t, 2, cart[0].Quantity)
		assert.Equal(t, "2", cart[1].Product.ID)
		assert.Equal(t, 1, cart[1].Quantity)
		assert.Equal(t, 25.0, s.CartTotal())
		assert.Equal(t, 2, s.ItemCount())
	})
}

func TestState_UpdateQuantity(t *testing.T) {
	for _, n := range []int{0, -1} {
		t.Run(fmt.Sprintf("%d removes", n), func(t *testing.T) {
			s := newTestState()
			s.AddToCart(pen)
			s.AddToCart(pad)

			s.UpdateQuantity("1", n)

			cart := s.Cart()
			require.Len(t, cart, 1)
			assert.Equal(t, "2", cart[0].Product.ID)
			assert.Equal(t, 5.0, s.CartTotal())
		})
	}

	t.Run("Positive sets quantity", func(t *testing.T) {
		s := newTestState()
		s.AddToCart(pen)

		s.UpdateQuantity("1", 7)

		assert.Equal(t, 7, s.Cart()[0].Quantity)
		assert.Equal(t, 70.0, s.CartTotal())
	})

	t.Run("Unknown id is ignored", func(t *testing.T) {
		s := newTestState()
		s.AddToCart(pen)

		s.UpdateQuantity("99", 3)

		assert.Equal(t, 1, s.Cart()[0].Quantity)
	})
}

func TestState_CartTotalNeverStale(t *testing.T) {
	s := newTestState()
	check := func() {
		var want float64
		for _, it := range s.Cart() {
			want += it.Product.Price * float64(it.Quantity)
		}
		assert.Equal(t, want, s.CartTotal())
	}

	s.AddToCart(pen)
	check()
	s.AddToCart(pad)
	check()
	s.UpdateQuantity("2", 3)
	check()
	s.RemoveFromCart("1")
	check()
	s.ClearCart()
	check()
	assert.Zero(t, s.CartTotal())
}

func TestState_Wishlist(t *testing.T) {
	s := newTestState()

	s.AddToWishlist(pen)
	s.AddToWishlist(pen)
	s.AddToWishlist(pad)

	assert.Len(t, s.Wishlist(), 2)
	assert.True(t, s.InWishlist("1"))

	s.RemoveFromWishlist("1")

	assert.False(t, s.InWishlist("1"))
	assert.Len(t, s.Wishlist(), 1)
}

func TestState_PlaceOrder(t *testing.T) {
	day := time.Date(2025, 3, 9, 15, 4, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		defer logger.Replace(zap.New(core))()

		s := newTestState(WithClock(func() time.Time { return day }))
		s.AddToCart(pen)
		s.AddToCart(pad)
		s.AddToCart(pen)
		before := s.Cart()

		o := s.PlaceOrder()

		assert.Equal(t, "ORD-001", o.ID)
		assert.Equal(t, "2025-03-09", o.Date)
		assert.Equal(t, "pending", o.Status)
		assert.Equal(t, 25.0, o.Total)
		assert.Equal(t, before, o.Items)
		assert.Empty(t, s.Cart())
		assert.Equal(t, PageConfirmation, s.CurrentPage())
		require.Len(t, s.Orders(), 1)

		entries := logs.FilterMessage("demo order placed").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "ORD-001", entries[0].ContextMap()["order_id"])
	})

	t.Run("Date is the UTC day", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		late := time.Date(2025, 3, 10, 2, 0, 0, 0, tokyo)
		s := newTestState(WithClock(func() time.Time { return late }))
		s.AddToCart(pen)

		o := s.PlaceOrder()

		assert.Equal(t, "2025-03-09", o.Date)
	})

	t.Run("Ids increment and newest first", func(t *testing.T) {
		s := newTestState()
		for i := 1; i <= 3; i++ {
			s.AddToCart(pad)
			o := s.PlaceOrder()
			assert.Equal(t, fmt.Sprintf("ORD-%03d", i), o.ID)
		}

		orders := s.Orders()
		require.Len(t, orders, 3)
		assert.Equal(t, "ORD-003", orders[0].ID)
		assert.Equal(t, "ORD-001", orders[2].ID)
	})

	t.Run("Snapshot is detached from later cart changes", func(t *testing.T) {
		s := newTestState()
		s.AddToCart(pen)
		s.PlaceOrder()

		s.AddToCart(pen)
		s.UpdateQuantity("1", 9)

		assert.Equal(t, 1, s.Orders()[0].Items[0].Quantity)
	})
}

func TestState_FilteredProducts(t *testing.T) {
	s := newTestState()

	assert.Len(t, s.FilteredProducts(), 2)
	assert.Equal(t, []string{AllCategories, "Pens & Pencils", "Notebooks"}, s.Categories())

	s.SetSelectedCategory("Notebooks")
	got := s.FilteredProducts()
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	s.SetSelectedCategory("")
	assert.Equal(t, AllCategories, s.SelectedCategory())

	s.SetSearchQuery("BLUE")
	got = s.FilteredProducts()
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	s.SetSelectedCategory("Notebooks")
	assert.Empty(t, s.FilteredProducts())
}

func TestState_Session(t *testing.T) {
	t.Run("Mock login and logout", func(t *testing.T) {
		s := newTestState()
		s.SetCurrentPage(PageLogin)

		u := s.Login("ann@edumart.test", "anything")

		assert.Equal(t, "ann@edumart.test", u.Email)
		assert.Equal(t, RoleCustomer, s.User().Role)
		assert.Equal(t, PageHome, s.CurrentPage())

		s.SetCurrentPage(PageOrders)
		s.Logout()

		assert.Nil(t, s.User())
		assert.Equal(t, PageHome, s.CurrentPage())
	})

	t.Run("Unauthorized navigates to login", func(t *testing.T) {
		s := newTestState()
		s.Login("ann@edumart.test", "x")
		s.SetCurrentPage(PageOrders)

		s.HandleSessionEvent(session.Event{Kind: session.EventUnauthorized})

		assert.Nil(t, s.User())
		assert.Equal(t, PageLogin, s.CurrentPage())
	})
}

func TestState_Loading(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := newTestState(WithClock(func() time.Time { return now }))

	assert.False(t, s.Loading())

	s.BeginLoading(800 * time.Millisecond)
	assert.True(t, s.Loading())

	now = now.Add(time.Second)
	assert.False(t, s.Loading())
}

func TestCatalog(t *testing.T) {
	t.Run("Embedded catalog parses", func(t *testing.T) {
		products := DefaultCatalog()

		require.NotEmpty(t, products)
		for _, p := range products {
			assert.NotEmpty(t, p.Name)
			assert.NotEmpty(t, p.NameAr)
			assert.Positive(t, p.Price)
		}
		assert.Equal(t, products, New().Products())
	})

	t.Run("Duplicate id", func(t *testing.T) {
		_, err := ParseCatalog([]byte("products:\n  - id: \"1\"\n  - id: \"1\"\n"))
		assert.ErrorIs(t, err, ErrInvalidCatalog)
	})

	t.Run("Malformed document", func(t *testing.T) {
		_, err := ParseCatalog([]byte("products: [\n"))
		assert.ErrorIs(t, err, ErrInvalidCatalog)
	})

	t.Run("Localized names", func(t *testing.T) {
		p := Product{Name: "Atlas", NameAr: "أطلس", Category: "Books"}
		assert.Equal(t, "أطلس", p.LocalName(i18n.Arabic))
		assert.Equal(t, "Atlas", p.LocalName(i18n.English))
		assert.Equal(t, "Books", p.LocalCategory(i18n.Arabic))
	})
}
