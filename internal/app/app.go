// Package app wires the providers, middlewares and feature modules into an
// HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ferdiebergado/thinkbox/internal/config"
)

type App struct {
	server          *http.Server
	cfg             *config.Config
	provider        *Provider
	middlewares     []func(http.Handler) http.Handler
	stop            context.CancelFunc
	shutdownTimeout time.Duration
}

func (a *App) registerMiddlewares() {
	for _, mw := range a.middlewares {
		a.provider.Router.Use(mw)
	}
}

// Handler returns the fully routed handler the server serves.
func (a *App) Handler() http.Handler {
	return a.provider.Router
}

func (a *App) Start(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

// Shutdown cancels in-flight requests and waits for them up to the configured timeout.
func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

func New(cfg *config.Config, provider *Provider, middlewares []func(http.Handler) http.Handler) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", serverCfg.Port),
		Handler: provider.Router,
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	a := &App{
		cfg:             cfg,
		provider:        provider,
		server:          server,
		middlewares:     middlewares,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout.Duration,
	}

	a.registerMiddlewares()
	a.setupRoutes()

	return a
}
