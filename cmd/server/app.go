package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/inkwell/inkwell-api/internal/config"
	"github.com/inkwell/inkwell-api/internal/platform/logger"
	"github.com/inkwell/inkwell-api/internal/platform/postgres"
	"github.com/inkwell/inkwell-api/internal/service/auth"
	"github.com/inkwell/inkwell-api/internal/store"
)

// application holds the fully wired dependency graph. Handlers receive
// interfaces; the concrete Postgres implementations live here.
type application struct {
	config *config.Config
	logger *slog.Logger

	dbManager *postgres.Manager

	userStore    store.UserStore
	articleStore store.ArticleStore
	commentStore store.CommentStore

	tokenService   auth.TokenService
	passwordHasher auth.PasswordHasher
}

// newApplication loads configuration and wires all application
// components. The database connection itself is NOT established here:
// it is dialed lazily by the connection gate on the first request that
// needs it.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server.LogLevel)
	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	manager := postgres.NewManager(cfg.Database.URL)

	tokenService, err := auth.NewTokenService(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenLifetimeMinutes)*time.Minute,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	return &application{
		config:         cfg,
		logger:         log,
		dbManager:      manager,
		userStore:      postgres.NewPostgresUserStore(manager, log),
		articleStore:   postgres.NewPostgresArticleStore(manager, log),
		commentStore:   postgres.NewPostgresCommentStore(manager, log),
		tokenService:   tokenService,
		passwordHasher: auth.NewBcryptHasher(),
	}, nil
}

// run applies pending migrations, starts the HTTP server, and blocks
// until shutdown completes.
func (app *application) run() error {
	if err := app.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return app.startHTTPServer(context.Background(), app.setupRouter())
}

// startHTTPServer runs the server with graceful shutdown on SIGINT and
// SIGTERM.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverCtx, cancelServer := context.WithCancel(ctx)
	defer cancelServer()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		app.logger.Info("Starting server", "port", app.config.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.logger.Error("Server failed", "error", err)
			cancelServer()
		}
	}()

	select {
	case <-shutdownCh:
		app.logger.Info("Shutting down server...")
	case <-serverCtx.Done():
		app.logger.Info("Server context canceled, shutting down...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Server shutdown failed", "error", err)
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	app.cleanup()

	app.logger.Info("Server shutdown completed")
	return nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if err := app.dbManager.Close(); err != nil {
		app.logger.Error("Failed to close database", "error", err)
	}
}
