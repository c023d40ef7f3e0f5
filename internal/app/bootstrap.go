package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
	"github.com/ferdiebergado/thinkbox/internal/config"
	"github.com/ferdiebergado/thinkbox/internal/middleware"
	"github.com/ferdiebergado/thinkbox/internal/pkg/logging"
	"github.com/ferdiebergado/thinkbox/internal/pkg/message"
	"github.com/ferdiebergado/thinkbox/internal/platform/db"
)

const (
	envKey  = "KEY"
	cfgFile = "config.json"
)

// Run loads the configuration, connects to the database and serves until ctx is done.
func Run(ctx context.Context) error {
	slog.Info("Initializing...")

	if os.Getenv("ENV") != "production" {
		if err := env.Load(".env"); err != nil {
			return fmt.Errorf("load env: %w", err)
		}
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	logging.SetupLogger(cfg.App.Env, cfg.App.LogLevel, os.Stdout)

	securityKey, ok := os.LookupEnv(envKey)
	if !ok || securityKey == "" {
		return fmt.Errorf(message.EnvErrFmt, envKey)
	}

	dbConn, err := db.NewPostgresDB(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	provider := NewProvider(cfg, securityKey, dbConn)

	api := New(cfg, provider, Middlewares(cfg))
	if err := api.Start(ctx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return api.Shutdown()
}

// Middlewares returns the global middleware chain in the order it is applied.
func Middlewares(cfg *config.Config) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.ContextGuard,
		middleware.CORS(cfg.Server.URL),
		middleware.CheckContentType,
	}
}
