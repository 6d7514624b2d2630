package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/bakery-web/internal/cache"
	"github.com/nikolayk812/bakery-web/internal/config"
	"github.com/nikolayk812/bakery-web/internal/httpx"
	"github.com/nikolayk812/bakery-web/internal/logging"
	"github.com/nikolayk812/bakery-web/internal/port"
	"github.com/nikolayk812/bakery-web/internal/repository"
	"github.com/nikolayk812/bakery-web/internal/repository/sqlite"
	"github.com/nikolayk812/bakery-web/internal/service"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

type repositories struct {
	products port.ProductRepository
	orders   port.OrderRepository
	feedback port.FeedbackRepository
	closers  []io.Closer
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	logger, err := logging.New(cfg.IsProduction())
	if err != nil {
		return fmt.Errorf("logging.New: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("openRepositories: %w", err)
	}
	defer func() {
		for _, c := range repos.closers {
			if err := c.Close(); err != nil {
				logger.Warn("close", zap.Error(err))
			}
		}
	}()

	shop, err := service.NewShop(repos.products, repos.orders, repos.feedback, logger)
	if err != nil {
		return fmt.Errorf("service.NewShop: %w", err)
	}

	handler := httpx.NewHandler(shop, cfg.Currency, logger)
	router := httpx.NewRouter(handler, httpx.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		StaticDir:      cfg.StaticDir,
	}, logger)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown: %w", err)
	}

	return nil
}

func openRepositories(ctx context.Context, cfg config.Config, logger *zap.Logger) (repositories, error) {
	var repos repositories

	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return repositories{}, fmt.Errorf("pgxpool.New: %w", err)
		}
		repos.closers = append(repos.closers, closerFunc(func() error { pool.Close(); return nil }))

		if err := repository.Migrate(ctx, pool); err != nil {
			pool.Close()
			return repositories{}, fmt.Errorf("repository.Migrate: %w", err)
		}

		repos.products = repository.NewProduct(pool)
		repos.orders = repository.NewOrder(pool)
		repos.feedback = repository.NewFeedback(pool)
		logger.Info("storage: postgres")
	} else {
		repo, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return repositories{}, fmt.Errorf("sqlite.Open: %w", err)
		}
		repos.closers = append(repos.closers, repo)

		repos.products = repo
		repos.orders = repo
		repos.feedback = repo
		logger.Info("storage: sqlite", zap.String("path", cfg.SQLitePath))
	}

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		repos.closers = append(repos.closers, client)

		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("redis ping failed", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}

		cached := cache.NewCachedProducts(repos.products, cache.NewRedis(client, "bakery-web"), cfg.ProductsCacheTTL, logger)

		// storage was just opened and seeded; a catalog cached by an earlier run may be stale
		if err := cached.Invalidate(ctx); err != nil {
			logger.Warn("products cache invalidate failed", zap.Error(err))
		}

		repos.products = cached
		logger.Info("products cache: redis", zap.String("addr", cfg.RedisAddr))
	}

	return repos, nil
}
