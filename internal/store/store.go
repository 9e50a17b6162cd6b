// Package store is the domain store: one slice per server resource, wired to
// a shared transport client and session.
package store

import (
	"context"
	"fmt"

	"edumart/internal/address"
	"edumart/internal/api"
	"edumart/internal/auth"
	"edumart/internal/cart"
	"edumart/internal/category"
	"edumart/internal/logger"
	"edumart/internal/order"
	"edumart/internal/product"
	"edumart/internal/session"
	"edumart/internal/wishlist"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Store struct {
	Session *session.Session
	Client  *api.Client

	Auth       *auth.Slice
	Products   *product.Slice
	Cart       *cart.Slice
	Wishlist   *wishlist.Slice
	Orders     *order.Slice
	Categories *category.Slice
}

func New(client *api.Client, sess *session.Session) *Store {
	return &Store{
		Session:    sess,
		Client:     client,
		Auth:       auth.NewSlice(auth.NewService(client), sess),
		Products:   product.NewSlice(product.NewService(client)),
		Cart:       cart.NewSlice(cart.NewService(client)),
		Wishlist:   wishlist.NewSlice(wishlist.NewService(client)),
		Orders:     order.NewSlice(order.NewService(client), address.NewService(client)),
		Categories: category.NewSlice(category.NewService(client)),
	}
}

// Bootstrap loads the catalog and, for a signed-in user, their cart,
// wishlist and orders, all in parallel. A failing load does not stop the
// others; each failure is also recorded in its slice. The first error is
// returned.
func (s *Store) Bootstrap(ctx context.Context) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "store"),
		zap.String("method", "Bootstrap"),
	)

	var g errgroup.Group
	g.Go(func() error {
		_, err := s.Categories.FetchCategories(ctx)
		return wrap("categories", err)
	})
	g.Go(func() error {
		_, err := s.Products.Refresh(ctx)
		return wrap("products", err)
	})

	authenticated := s.Session.Authenticated()
	if authenticated {
		g.Go(func() error {
			_, err := s.Cart.FetchCart(ctx)
			return wrap("cart", err)
		})
		g.Go(func() error {
			_, err := s.Wishlist.FetchWishlist(ctx)
			return wrap("wishlist", err)
		})
		g.Go(func() error {
			_, err := s.Orders.FetchOrders(ctx)
			return wrap("orders", err)
		})
	}

	err := g.Wait()
	if err != nil {
		log.Warn("bootstrap incomplete", zap.Bool("authenticated", authenticated), zap.Error(err))
		return err
	}
	log.Info("bootstrap complete", zap.Bool("authenticated", authenticated))
	return nil
}

// ResetUserData clears every slice that belongs to the signed-in user.
func (s *Store) ResetUserData() {
	s.Auth.Reset()
	s.Cart.Reset()
	s.Wishlist.Reset()
	s.Orders.Reset()
}

// Watch subscribes to session events before returning. On sign-out or a
// rejected credential it resets the user's slices, then passes every event
// to handlers. The returned channel closes once ctx is done and the events
// already queued have been handled.
func (s *Store) Watch(ctx context.Context, handlers ...func(session.Event)) <-chan struct{} {
	events, unsubscribe := s.Session.Subscribe(8)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer unsubscribe()
		for {
			select {
			case <-ctx.Done():
				// events published before cancellation are still delivered
				for {
					select {
					case ev, ok := <-events:
						if !ok {
							return
						}
						s.dispatch(ctx, ev, handlers)
					default:
						return
					}
				}
			case ev, ok := <-events:
				if !ok {
					return
				}
				s.dispatch(ctx, ev, handlers)
			}
		}
	}()
	return done
}

func (s *Store) dispatch(ctx context.Context, ev session.Event, handlers []func(session.Event)) {
	s.handle(ctx, ev)
	for _, h := range handlers {
		h(ev)
	}
}

func (s *Store) handle(ctx context.Context, ev session.Event) {
	switch ev.Kind {
	case session.EventSignedOut, session.EventUnauthorized:
		logger.FromCtx(ctx).Info("session ended, clearing user data",
			zap.String("layer", "store"),
			zap.String("event", ev.Kind.String()),
		)
		s.ResetUserData()
	}
}

// Snapshot is a consistent-per-slice copy of the whole store.
type Snapshot struct {
	Auth       auth.State
	Products   product.State
	Cart       cart.State
	Wishlist   wishlist.State
	Orders     order.State
	Categories category.State
}

func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Auth:       s.Auth.State(),
		Products:   s.Products.State(),
		Cart:       s.Cart.State(),
		Wishlist:   s.Wishlist.State(),
		Orders:     s.Orders.State(),
		Categories: s.Categories.State(),
	}
}

// Loading reports whether any slice has a request in flight.
func (s Snapshot) Loading() bool {
	return s.Auth.Loading || s.Products.Loading || s.Cart.Loading ||
		s.Wishlist.Loading || s.Orders.Loading || s.Categories.Loading
}

// Errors lists the non-empty slice errors keyed by slice name.
func (s Snapshot) Errors() map[string]string {
	out := make(map[string]string)
	for name, msg := range map[string]string{
		"auth":       s.Auth.Error,
		"products":   s.Products.Error,
		"cart":       s.Cart.Error,
		"wishlist":   s.Wishlist.Error,
		"orders":     s.Orders.Error,
		"categories": s.Categories.Error,
	} {
		if msg != "" {
			out[name] = msg
		}
	}
	return out
}

func wrap(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrBootstrap, name, err)
}
