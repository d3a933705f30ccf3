package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msomdec/storefront/internal/config"
	"github.com/msomdec/storefront/internal/domain"
	"github.com/msomdec/storefront/internal/handler"
	"github.com/msomdec/storefront/internal/repository"
	"github.com/msomdec/storefront/internal/service"
	"github.com/msomdec/storefront/internal/store/sqlite"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logOpts := &slog.HandlerOptions{Level: cfg.LogLevel}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET is not set; POST /token will fail and every bearer token is rejected")
	} else if cfg.WeakSecret() {
		slog.Warn("JWT_SECRET should be at least 32 characters for HMAC-SHA256 security")
	}

	stores, db, err := openStores(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("open %s record stores: %w", cfg.Backend, err)
	}
	if db != nil {
		defer db.Close()
	}

	repos := repository.New(stores)
	tokens := service.NewTokenSigner(cfg.JWTSecret, cfg.TokenTTL)
	limiter := service.NewTokenBucket(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer limiter.Stop()

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, handler.Services{
		Auth:      service.NewAuthService(repos.Users, tokens, cfg.BcryptCost),
		Access:    service.NewAccessPolicy(cfg.AdminEmails),
		Products:  service.NewProductService(repos.Products, repos.Carts, repos.Wishlists),
		Carts:     service.NewCartService(repos.Carts, repos.Products),
		Wishlists: service.NewWishlistService(repos.Wishlists, repos.Products),
		Limiter:   limiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.Wrap(mux, cfg.CORSOrigin),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", srv.Addr, "backend", cfg.Backend, "data_dir", cfg.DataDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}

// openStores builds the record stores for the configured backend. The
// returned Database is nil for the JSON file backend.
func openStores(ctx context.Context, cfg config.Config) (repository.Stores, domain.Database, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := sqlite.New(cfg.DatabasePath)
		if err != nil {
			return repository.Stores{}, nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return repository.Stores{}, nil, fmt.Errorf("run migrations: %w", err)
		}
		slog.Info("database migrations applied", "path", cfg.DatabasePath)
		return repository.SQLiteStores(db), db, nil
	default:
		return repository.FileStores(repository.Paths{
			Users:     cfg.UsersPath,
			Products:  cfg.ProductsPath,
			Carts:     cfg.CartsPath,
			Wishlists: cfg.WishlistsPath,
			Sequences: cfg.SequencesPath,
		}), nil, nil
	}
}
