// Package app wires configuration, storage, services, and transport into a
// running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/braindump-backend/internal/adapter/postgres"
	itemrepo "github.com/heartmarshall/braindump-backend/internal/adapter/postgres/item"
	statsrepo "github.com/heartmarshall/braindump-backend/internal/adapter/postgres/stats"
	"github.com/heartmarshall/braindump-backend/internal/auth"
	"github.com/heartmarshall/braindump-backend/internal/config"
	itemsvc "github.com/heartmarshall/braindump-backend/internal/service/item"
	statssvc "github.com/heartmarshall/braindump-backend/internal/service/stats"
	"github.com/heartmarshall/braindump-backend/internal/transport/middleware"
	"github.com/heartmarshall/braindump-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, runs pending
// migrations, builds the service graph, and serves HTTP until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	itemRepo := itemrepo.New(pool)
	statsRepo := statsrepo.New(pool)

	statsService := statssvc.NewService(logger, statsRepo, txManager, cfg.Game)
	itemService := itemsvc.NewService(logger, itemRepo, statsService, cfg.Game, nil)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTTL)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	router := rest.NewRouter(rest.Handlers{
		Items:  rest.NewItemHandler(itemService, logger),
		Stats:  rest.NewStatsHandler(statsService, logger),
		Health: rest.NewHealthHandler(pool, BuildVersion()),
	})

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(tokens),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
