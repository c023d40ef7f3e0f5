package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"os"

	"github.com/ferdiebergado/thinkbox/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// NewPostgresDB creates and validates a database connection.
// Credentials come from the DB_* environment variables.
func NewPostgresDB(ctx context.Context, cfg *config.DB) (*sql.DB, error) {
	slog.Info("Connecting to the database...")

	dbName := os.Getenv("DB_NAME")
	dsn := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(os.Getenv("DB_USER"), os.Getenv("DB_PASS")),
		Host:     os.Getenv("DB_HOST") + ":" + os.Getenv("DB_PORT"),
		Path:     dbName,
		RawQuery: url.Values{"sslmode": {os.Getenv("DB_SSLMODE")}}.Encode(),
	}

	conn, err := sql.Open(cfg.Driver, dsn.String())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime.Duration)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime.Duration)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout.Duration)
	defer cancel()

	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	slog.Info("Connected to the database.", "db", dbName)

	return conn, nil
}
