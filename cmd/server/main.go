package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/killpowa/api/internal/config"
	"github.com/killpowa/api/internal/database"
	"github.com/killpowa/api/internal/handler"
	"github.com/killpowa/api/internal/middleware"
	"github.com/killpowa/api/internal/repository"
	"github.com/killpowa/api/internal/service"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:         cfg.Database.Host,
		Port:         cfg.Database.Port,
		User:         cfg.Database.User,
		Password:     cfg.Database.Password,
		Namespace:    cfg.Database.Namespace,
		Database:     cfg.Database.Database,
		QueryTimeout: cfg.Database.QueryTimeout,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)

	// Initialize event hub for the live stream
	eventHub := service.NewEventHub(cfg.Stream.HeartbeatInterval)

	// Initialize services
	tokenService := service.NewTokenService(service.TokenServiceConfig{
		Secret:         cfg.JWT.Secret,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})

	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:          userRepo,
		Invites:           service.NewInviteCodeGenerator(),
		Tokens:            tokenService,
		Events:            eventHub,
		InviteMaxAttempts: cfg.Invite.MaxAttempts,
	})

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	eventsHandler := handler.NewEventsHandler(eventHub)
	healthHandler := handler.NewHealthHandler()

	// Create router and register routes
	mux := http.NewServeMux()

	// Public endpoints
	mux.HandleFunc("GET /health", healthHandler.Check)
	mux.HandleFunc("POST /authenticate", authHandler.Authenticate)

	// Protected endpoints
	authMiddleware := middleware.Auth(tokenService, authService)
	mux.Handle("GET /users/me", authMiddleware(http.HandlerFunc(userHandler.Me)))
	mux.Handle("GET /users", authMiddleware(http.HandlerFunc(userHandler.List)))
	mux.Handle("GET /stream", authMiddleware(http.HandlerFunc(eventsHandler.Stream)))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	// Create HTTP server. No WriteTimeout: /stream holds its connection open.
	server := &http.Server{
		Addr:        ":" + cfg.Server.Port,
		Handler:     wrapped,
		ReadTimeout: cfg.Server.ReadTimeout,
		IdleTimeout: 120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	// Tear down live streams first so Shutdown is not stuck waiting on them.
	eventHub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
