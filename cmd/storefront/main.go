package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"edumart/internal/api"
	"edumart/internal/appstate"
	"edumart/internal/config"
	"edumart/internal/i18n"
	"edumart/internal/logger"
	"edumart/internal/metrics"
	"edumart/internal/session"
	"edumart/internal/storage"
	"edumart/internal/store"

	"go.uber.org/zap"
)

var openStorageFunc = storage.Open

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", api.ErrorMessage(err))
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	if len(args) == 0 {
		printUsage(stdout)
		return errUsage
	}

	a, err := newApp(ctx, cfg, stdout)
	if err != nil {
		return err
	}
	defer a.Close()

	watchCtx, stopWatch := context.WithCancel(ctx)
	done := a.shop.Watch(watchCtx, a.nav.HandleSessionEvent)

	ctx, _ = logger.EnsureRequestID(ctx)
	err = a.dispatch(ctx, args[0], args[1:])

	stopWatch()
	<-done
	if a.nav.CurrentPage() == appstate.PageLogin {
		fmt.Fprintln(stdout, a.lang.T(i18n.AuthSessionExpired))
	}
	return err
}

// app is everything one storefront invocation needs.
type app struct {
	cfg   *config.Config
	out   io.Writer
	db    storage.Storage
	sess  *session.Session
	shop  *store.Store
	lang  *i18n.Localizer
	nav   *appstate.State
	stats *metrics.ClientStats
}

func newApp(ctx context.Context, cfg *config.Config, out io.Writer) (*app, error) {
	db, err := openStorageFunc(ctx, storage.Options{
		Driver:        cfg.StorageDriver,
		DSN:           cfg.StorageDSN,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
	})
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	sess := session.New(db)
	if err := sess.Restore(ctx); err != nil {
		db.Close()
		return nil, err
	}

	stats := &metrics.ClientStats{}
	client := api.NewClient(cfg.APIBaseURL, cfg.APITimeout, sess,
		api.WithStats(stats),
		api.WithRateLimit(cfg.RateLimit, cfg.RateBurst),
	)

	logger.FromCtx(ctx).Debug("storefront ready",
		zap.String("api", cfg.APIBaseURL),
		zap.String("storage", cfg.StorageDriver),
		zap.Bool("authenticated", sess.Authenticated()),
	)

	return &app{
		cfg:   cfg,
		out:   out,
		db:    db,
		sess:  sess,
		shop:  store.New(client, sess),
		lang:  i18n.New(ctx, db),
		nav:   appstate.New(),
		stats: stats,
	}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		logger.L().Warn("failed to close storage", zap.Error(err))
	}
}
