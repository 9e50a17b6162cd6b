package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"edumart/internal/address"
	"edumart/internal/appstate"
	"edumart/internal/auth"
	"edumart/internal/cart"
	"edumart/internal/category"
	"edumart/internal/i18n"
	"edumart/internal/order"
	"edumart/internal/product"
	"edumart/internal/utils"

	"github.com/davecgh/go-spew/spew"
)

type command struct {
	usage string
	run   func(a *app, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"login":      {"login -email E -password P", (*app).login},
	"register":   {"register -email E -password P -first F -last L", (*app).register},
	"logout":     {"logout", (*app).logout},
	"whoami":     {"whoami", (*app).whoami},
	"products":   {"products [-search Q] [-category ID] [-page N] [-size N] [-sort Name|Price|CreatedAt] [-asc]", (*app).products},
	"product":    {"product -id ID | -slug SLUG", (*app).product},
	"categories": {"categories", (*app).categories},
	"cart":       {"cart [add -product ID -qty N | update -item ID -qty N | remove -item ID | clear]", (*app).cart},
	"wishlist":   {"wishlist [toggle -product ID]", (*app).wishlist},
	"orders":     {"orders", (*app).orders},
	"order":      {"order -id ID", (*app).order},
	"address":    {"address [add -first F -last L -line1 A -city C -country C]", (*app).address},
	"checkout":   {"checkout [-payment 1..5] [-address ID]", (*app).checkout},
	"state":      {"state", (*app).state},
	"lang":       {"lang [en|ar]", (*app).language},
	"demo":       {"demo [-add ID,ID,...] [-search Q] [-category NAME]", (*app).demo},
	"stats":      {"stats", (*app).statsCmd},
}

func printUsage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(w, "usage: storefront <command> [flags]")
	for _, name := range names {
		fmt.Fprintln(w, "  "+commands[name].usage)
	}
}

func (a *app) dispatch(ctx context.Context, name string, args []string) error {
	cmd, ok := commands[name]
	if !ok {
		printUsage(a.out)
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}
	return cmd.run(a, ctx, args)
}

func (a *app) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	return nil
}

func (a *app) requireSession() error {
	if !a.sess.Authenticated() {
		return errNotSignedIn
	}
	return nil
}

// ---------- auth ----------

func (a *app) login(ctx context.Context, args []string) error {
	fs := a.flags("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		fs.PrintDefaults()
		return fmt.Errorf("%w: email and password are required", errUsage)
	}

	resp, err := a.shop.Auth.Login(ctx, auth.LoginRequest{Email: *email, Password: *password})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s, %s\n", a.lang.T(i18n.AuthWelcome), resp.User.FullName())
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := a.flags("register")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	vendor := fs.Bool("vendor", false, "register as a vendor")
	if err := parse(fs, args); err != nil {
		return err
	}

	role := auth.RoleCustomer
	if *vendor {
		role = auth.RoleVendor
	}
	resp, err := a.shop.Auth.Register(ctx, auth.RegisterRequest{
		Email:     *email,
		Password:  *password,
		FirstName: *first,
		LastName:  *last,
		Role:      role,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "registered %s (%s)\n", resp.User.Email, resp.User.Role)
	return nil
}

func (a *app) logout(ctx context.Context, _ []string) error {
	if err := a.shop.Auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "signed out")
	return nil
}

func (a *app) whoami(ctx context.Context, _ []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	u, err := a.shop.Auth.LoadCurrentUser(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s <%s> %s\n", u.FullName(), u.Email, u.Role)
	if exp, ok := a.sess.ExpiresAt(); ok {
		fmt.Fprintf(a.out, "session expires %s\n", exp.Format("2006-01-02 15:04 MST"))
	}
	return nil
}

// ---------- catalog ----------

func (a *app) products(ctx context.Context, args []string) error {
	fs := a.flags("products")
	search := fs.String("search", "", "free-text search")
	categoryID := fs.String("category", "", "category id")
	page := fs.Int("page", 1, "page number")
	size := fs.Int("size", product.DefaultPageSize, "page size")
	sortBy := fs.String("sort", product.DefaultSortBy, "sort key")
	asc := fs.Bool("asc", false, "sort ascending")
	featured := fs.Bool("featured", false, "featured products only")
	if err := parse(fs, args); err != nil {
		return err
	}

	patch := product.Filter{
		PageNumber:     *page,
		PageSize:       *size,
		SortBy:         sortBy,
		SortDescending: utils.Ptr(!*asc),
	}
	if *search != "" {
		patch.SearchTerm = search
	}
	if *categoryID != "" {
		patch.CategoryID = categoryID
	}
	if *featured {
		patch.IsFeatured = featured
	}

	paged, err := a.shop.Products.FetchProducts(ctx, product.DefaultFilter().Merge(patch))
	if err != nil {
		return err
	}
	renderProducts(a.out, paged.Data)
	fmt.Fprintf(a.out, "page %d/%d, %d products\n", paged.PageNumber, paged.TotalPages, paged.TotalRecords)
	return nil
}

func (a *app) product(ctx context.Context, args []string) error {
	fs := a.flags("product")
	id := fs.String("id", "", "product id")
	slug := fs.String("slug", "", "product slug")
	if err := parse(fs, args); err != nil {
		return err
	}

	var (
		p   *product.Product
		err error
	)
	switch {
	case *id != "":
		p, err = a.shop.Products.FetchProductByID(ctx, *id)
	case *slug != "":
		p, err = a.shop.Products.FetchProductBySlug(ctx, *slug)
	default:
		return fmt.Errorf("%w: -id or -slug is required", errUsage)
	}
	if err != nil {
		return err
	}

	stock := a.lang.T(i18n.CommonInStock)
	if !p.InStock() {
		stock = a.lang.T(i18n.CommonOutOfStock)
	}
	fmt.Fprintf(a.out, "%s\n%s: %s\n%s\n", p.Name, a.lang.T(i18n.CommonPrice), utils.FormatMoney(p.Price), stock)
	if p.Description != nil {
		fmt.Fprintln(a.out, *p.Description)
	}
	if p.CategoryID != "" {
		if _, err := a.shop.Categories.FetchCategories(ctx); err == nil {
			renderBreadcrumbs(a.out, a.shop.Categories.Path(p.CategoryID))
		}
	}
	return nil
}

func (a *app) categories(ctx context.Context, _ []string) error {
	tree, err := a.shop.Categories.FetchCategories(ctx)
	if err != nil {
		return err
	}
	for _, f := range category.Flatten(tree) {
		fmt.Fprintf(a.out, "%s%s (%s)\n", strings.Repeat("  ", f.Depth), f.Category.Name, f.Category.ID)
	}
	return nil
}

// ---------- cart ----------

func (a *app) cart(ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	if len(args) == 0 {
		c, err := a.shop.Cart.FetchCart(ctx)
		if err != nil {
			return err
		}
		renderCart(a.out, a.lang, c)
		return nil
	}

	fs := a.flags("cart " + args[0])
	productID := fs.String("product", "", "product id")
	itemID := fs.String("item", "", "cart item id")
	qty := fs.Int("qty", 1, "quantity")
	if err := parse(fs, args[1:]); err != nil {
		return err
	}

	var (
		c   *cart.Cart
		err error
	)
	switch args[0] {
	case "add":
		c, err = a.shop.Cart.AddToCart(ctx, cart.AddToCartRequest{ProductID: *productID, Quantity: *qty})
	case "update":
		if _, err = a.shop.Cart.FetchCart(ctx); err == nil {
			c, err = a.shop.Cart.UpdateCartItem(ctx, *itemID, *qty)
		}
	case "remove":
		if _, err = a.shop.Cart.FetchCart(ctx); err == nil {
			err = a.shop.Cart.RemoveFromCart(ctx, *itemID)
		}
	case "clear":
		err = a.shop.Cart.ClearCart(ctx)
	default:
		return fmt.Errorf("%w: unknown cart action %q", errUsage, args[0])
	}
	if err != nil {
		return err
	}
	if c == nil {
		c = a.shop.Cart.State().Cart
	}
	renderCart(a.out, a.lang, c)
	return nil
}

// ---------- wishlist ----------

func (a *app) wishlist(ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	if _, err := a.shop.Wishlist.FetchWishlist(ctx); err != nil {
		return err
	}

	if len(args) > 0 {
		if args[0] != "toggle" {
			return fmt.Errorf("%w: unknown wishlist action %q", errUsage, args[0])
		}
		fs := a.flags("wishlist toggle")
		productID := fs.String("product", "", "product id")
		if err := parse(fs, args[1:]); err != nil {
			return err
		}
		if err := a.shop.Wishlist.Toggle(ctx, *productID); err != nil {
			return err
		}
	}

	w := a.shop.Wishlist.State().Wishlist
	if w == nil || len(w.Items) == 0 {
		fmt.Fprintln(a.out, a.lang.T(i18n.WishlistEmpty))
		return nil
	}
	fmt.Fprintln(a.out, a.lang.T(i18n.WishlistTitle))
	for _, it := range w.Items {
		fmt.Fprintf(a.out, "  %s  %s  %s\n", it.ProductID, it.ProductName, utils.FormatMoney(it.Price))
	}
	return nil
}

// ---------- orders ----------

func (a *app) orders(ctx context.Context, _ []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	list, err := a.shop.Orders.FetchOrders(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, a.lang.T(i18n.OrdersEmpty))
		return nil
	}
	renderOrders(a.out, a.lang, list)
	return nil
}

func (a *app) order(ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	fs := a.flags("order")
	id := fs.String("id", "", "order id")
	if err := parse(fs, args); err != nil {
		return err
	}
	o, err := a.shop.Orders.FetchOrderByID(ctx, *id)
	if err != nil {
		return err
	}
	renderOrder(a.out, a.lang, o)
	return nil
}

func (a *app) address(ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	if len(args) > 0 && args[0] == "add" {
		fs := a.flags("address add")
		req := address.CreateAddressRequest{}
		fs.StringVar(&req.FirstName, "first", "", "first name")
		fs.StringVar(&req.LastName, "last", "", "last name")
		fs.StringVar(&req.Address1, "line1", "", "street address")
		fs.StringVar(&req.City, "city", "", "city")
		fs.StringVar(&req.State, "state", "", "state or region")
		fs.StringVar(&req.PostalCode, "zip", "", "postal code")
		fs.StringVar(&req.Country, "country", "", "country")
		fs.BoolVar(&req.IsDefault, "default", false, "make this the default address")
		if err := parse(fs, args[1:]); err != nil {
			return err
		}
		if _, err := a.shop.Orders.CreateAddress(ctx, req); err != nil {
			return err
		}
	}

	list, err := a.shop.Orders.FetchAddresses(ctx)
	if err != nil {
		return err
	}
	for _, addr := range list {
		marker := " "
		if addr.IsDefault {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %s  %s\n", marker, addr.ID, strings.Join(addr.Lines(), ", "))
	}
	return nil
}

func (a *app) checkout(ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	fs := a.flags("checkout")
	payment := fs.Int("payment", int(order.PaymentMethodCashOnDelivery), "payment method 1..5")
	addressID := fs.String("address", "", "shipping and billing address id, default address when empty")
	if err := parse(fs, args); err != nil {
		return err
	}

	if *addressID == "" {
		list, err := a.shop.Orders.FetchAddresses(ctx)
		if err != nil {
			return err
		}
		def, ok := address.Default(list)
		if !ok {
			return errNoAddress
		}
		*addressID = def.ID
	}

	o, err := a.shop.Orders.CreateOrder(ctx, order.CreateOrderRequest{
		PaymentMethod:     order.PaymentMethod(*payment),
		ShippingAddressID: *addressID,
		BillingAddressID:  *addressID,
	})
	if err != nil {
		return err
	}
	a.nav.SetCurrentPage(appstate.PageConfirmation)
	renderOrder(a.out, a.lang, o)
	return nil
}

// ---------- tooling ----------

// state bootstraps the store and dumps the whole snapshot.
func (a *app) state(ctx context.Context, _ []string) error {
	err := a.shop.Bootstrap(ctx)
	cfg := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
	cfg.Fdump(a.out, a.shop.Snapshot())
	return err
}

func (a *app) language(ctx context.Context, args []string) error {
	if len(args) > 0 {
		if err := a.lang.SetLang(ctx, i18n.Language(args[0])); err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
	}
	fmt.Fprintf(a.out, "%s %s %s\n", a.lang.Lang(), a.lang.Dir(), a.lang.T(i18n.BrandName))
	return nil
}

func (a *app) statsCmd(ctx context.Context, _ []string) error {
	_, err := a.shop.Products.Refresh(ctx)
	snap := a.stats.Snapshot()
	fmt.Fprintf(a.out, "requests=%d failures=%d unauthorized=%d deduplicated=%d avg=%s\n",
		snap.Requests, snap.Failures, snap.Unauthorized, snap.Deduplicated, snap.AverageLatency)
	return err
}

// demo runs the offline shopping flow against the embedded catalog.
func (a *app) demo(_ context.Context, args []string) error {
	fs := a.flags("demo")
	add := fs.String("add", "", "comma separated product ids to add to the cart")
	search := fs.String("search", "", "search query")
	categoryName := fs.String("category", appstate.AllCategories, "category name")
	if err := parse(fs, args); err != nil {
		return err
	}

	local := appstate.New()
	local.BeginLoading(a.cfg.DemoLoadDelay)
	local.SetSearchQuery(*search)
	local.SetSelectedCategory(*categoryName)

	lang := a.lang.Lang()
	for _, p := range local.FilteredProducts() {
		fmt.Fprintf(a.out, "  %s  %-28s %-18s %s\n", p.ID, utils.Truncate(p.LocalName(lang), 28), p.LocalCategory(lang), utils.FormatMoney(p.Price))
	}
	if *add == "" {
		return nil
	}

	for _, id := range strings.Split(*add, ",") {
		p, ok := local.Product(strings.TrimSpace(id))
		if !ok {
			return fmt.Errorf("%w: unknown demo product %q", errUsage, id)
		}
		local.AddToCart(p)
	}
	fmt.Fprintf(a.out, "%s: %d, %s: %s\n",
		a.lang.T(i18n.CartItems), local.ItemCount(),
		a.lang.T(i18n.CommonTotal), utils.FormatMoney(local.CartTotal()))

	o := local.PlaceOrder()
	fmt.Fprintf(a.out, "%s %s %s %s\n", a.lang.T(i18n.OrdersOrderNumber), o.ID, o.Status, utils.FormatMoney(o.Total))
	return nil
}
