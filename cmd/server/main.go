// Command gamevault-server starts the gamevault HTTP API server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avolchek/gamevault/internal/auth"
	"github.com/avolchek/gamevault/internal/config"
	"github.com/avolchek/gamevault/internal/limiter"
	"github.com/avolchek/gamevault/internal/migrate"
	"github.com/avolchek/gamevault/internal/repository/postgres"
	httpserver "github.com/avolchek/gamevault/internal/server/http"
	"github.com/avolchek/gamevault/internal/service"
	"github.com/avolchek/gamevault/internal/token"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration, runs migrations, and serves the API until
// SIGINT/SIGTERM.
func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.New()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Addr),
	)

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, cfg.Database.DSN); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	// DB pool
	pool, err := pgxpool.New(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("pgxpool.New", zap.Error(err))
	}
	defer pool.Close()

	// Repositories
	db := &postgres.DB{Pool: pool}
	userRepo := postgres.NewUserRepo(db)
	gameRepo := postgres.NewGameRepo(db)
	reviewRepo := postgres.NewReviewRepo(db)

	lim := limiter.NewPG(pool, cfg.Limiter.Window, cfg.Limiter.MaxFails, cfg.Limiter.BlockFor)

	// Services
	tokens := token.New([]byte(cfg.Token.Secret), cfg.Token.TTL)
	authSvc := service.NewAuthService(userRepo, tokens, lim)
	gameSvc := service.NewGameService(gameRepo, reviewRepo)

	// HTTP server with middleware chain
	api := httpserver.New(authSvc, gameSvc)
	handler := httpserver.Chain(api.Mux(),
		httpserver.Recover(logger),
		httpserver.Logging(logger),
		httpserver.Authenticate(auth.NewAuthenticator(tokens, userRepo)),
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if cfg.TLS.Enable {
			logger.Info("listening (TLS)", zap.String("addr", cfg.Addr))
			errCh <- srv.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
			return
		}
		logger.Info("listening", zap.String("addr", cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutCtx); err != nil {
			_ = srv.Close()
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}

	logger.Info("shutdown complete")
}
