package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mmynk/settleup/internal/auth"
	"github.com/mmynk/settleup/internal/config"
	"github.com/mmynk/settleup/internal/metrics"
	"github.com/mmynk/settleup/internal/server"
	"github.com/mmynk/settleup/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Setup(logging.Options{
		Level: cfg.Logging.Level,
		JSON:  cfg.Logging.Format == "json",
	})

	authDeps, err := buildAuth(cfg.Auth)
	if err != nil {
		logger.Error("Failed to configure authentication", "error", err)
		os.Exit(1)
	}

	router := server.NewRouter(logger, server.RouterDependencies{
		Metrics:         metrics.New(),
		Auth:            authDeps,
		MaxParticipants: cfg.Settle.MaxParticipants,
		MetricsEnabled:  cfg.HTTP.MetricsEnabled,
		AllowedOrigins:  cfg.HTTP.AllowedOrigins,
	})

	srv := server.New(logger, cfg.HTTP, router)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
	case err := <-errCh:
		if err != nil {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}

// buildAuth returns nil when no JWT secret is configured.
func buildAuth(cfg config.AuthConfig) (*server.AuthDependencies, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	users, err := auth.ParseUsers(cfg.Users)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		slog.Warn("Authentication enabled with no users; nobody can log in")
	}

	return &server.AuthDependencies{
		Authenticator: auth.NewStaticAuthenticator(users),
		JWTManager:    auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL),
	}, nil
}
