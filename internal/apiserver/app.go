// Package apiserver wires the store, business, and HTTP layers into a
// runnable SkillSwap API server.
package apiserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kart-io/logger"

	"github.com/kart-io/skillswap/internal/apiserver/router"
	"github.com/kart-io/skillswap/internal/store"
)

// Config holds everything needed to run the server.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// Driver selects the backing store: memory or sqlite.
	Driver string

	// DSN is the SQLite data source name.
	DSN string

	// Seed loads the demo dataset on startup.
	Seed bool

	// JWTSecret signs access tokens.
	JWTSecret string

	// TokenTTL is the access token lifetime.
	TokenTTL time.Duration

	// ShutdownTimeout bounds the graceful shutdown.
	ShutdownTimeout time.Duration
}

// Run starts the API server and blocks until shutdown.
func Run(cfg *Config) error {
	logger.Info("Starting skillswap apiserver...")

	f, err := newFactory(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warnf("Failed to close store: %v", err)
		}
	}()

	if cfg.Seed {
		if err := store.Seed(context.Background(), f); err != nil {
			return fmt.Errorf("failed to seed store: %w", err)
		}
		logger.Info("Demo dataset loaded")
	}

	engine := router.New(f, router.Config{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Infow("HTTP server listening", "addr", cfg.Addr, "driver", cfg.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}

func newFactory(cfg *Config) (store.Factory, error) {
	if cfg.Driver == "sqlite" {
		return store.NewSQLite(cfg.DSN)
	}
	return store.NewMemory(), nil
}
