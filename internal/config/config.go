// Package config loads the JSON configuration file and applies environment overrides.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	timex "github.com/ferdiebergado/thinkbox/internal/pkg/time"
)

type App struct {
	Env      string `json:"env,omitempty"`
	LogLevel string `json:"log_level,omitempty"`
	Key      string `json:"-"`
}

type Server struct {
	URL             string         `json:"url,omitempty"`
	Port            int            `json:"port,omitempty"`
	ReadTimeout     timex.Duration `json:"read_timeout,omitempty"`
	WriteTimeout    timex.Duration `json:"write_timeout,omitempty"`
	IdleTimeout     timex.Duration `json:"idle_timeout,omitempty"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout,omitempty"`
	MaxBodyBytes    int64          `json:"max_body_bytes,omitempty"`
}

type DB struct {
	Driver          string         `json:"driver,omitempty"`
	MaxOpenConns    int            `json:"max_open_conns,omitempty"`
	MaxIdleConns    int            `json:"max_idle_conns,omitempty"`
	ConnMaxIdleTime timex.Duration `json:"conn_max_idle_time,omitempty"`
	ConnMaxLifetime timex.Duration `json:"conn_max_lifetime,omitempty"`
	PingTimeout     timex.Duration `json:"ping_timeout,omitempty"`
}

type JWT struct {
	JTILength  uint32         `json:"jti_length,omitempty"`
	Issuer     string         `json:"issuer,omitempty"`
	TTL        timex.Duration `json:"ttl,omitempty"`
	RefreshTTL timex.Duration `json:"refresh_ttl,omitempty"`
}

type Argon2 struct {
	Memory     uint32 `json:"memory,omitempty"`
	Iterations uint32 `json:"iterations,omitempty"`
	Threads    uint8  `json:"threads,omitempty"`
	SaltLength uint32 `json:"salt_length,omitempty"`
	KeyLength  uint32 `json:"key_length,omitempty"`
}

// RateLimit bounds the solver endpoints per client IP.
type RateLimit struct {
	Requests int            `json:"requests,omitempty"`
	Window   timex.Duration `json:"window,omitempty"`
}

type PageRank struct {
	Damping   float64 `json:"damping,omitempty"`
	Samples   int     `json:"samples,omitempty"`
	Chains    int     `json:"chains,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
	MaxPages  int     `json:"max_pages,omitempty"`
}

type Solver struct {
	Timeout  timex.Duration `json:"timeout,omitempty"`
	PageRank *PageRank      `json:"pagerank,omitempty"`
}

type Config struct {
	App       *App       `json:"app,omitempty"`
	Server    *Server    `json:"server,omitempty"`
	DB        *DB        `json:"db,omitempty"`
	JWT       *JWT       `json:"jwt,omitempty"`
	Argon2    *Argon2    `json:"argon2,omitempty"`
	RateLimit *RateLimit `json:"rate_limit,omitempty"`
	Solver    *Solver    `json:"solver,omitempty"`
}

func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("app", c.App),
		slog.Any("server", c.Server),
		slog.Any("db", c.DB),
		slog.Any("jwt", c.JWT),
		slog.Any("argon2", c.Argon2),
		slog.Any("rate_limit", c.RateLimit),
		slog.Any("solver", c.Solver),
	)
}

// Load reads cfgFile and overrides it with the environment.
func Load(cfgFile string) (*Config, error) {
	slog.Info("Loading config...")
	cfg, err := parseCfgFile(cfgFile)
	if err != nil {
		return nil, err
	}

	if err := overrideWithEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", cfg))
	return cfg, nil
}

func parseCfgFile(cfgFile string) (*Config, error) {
	cfgFile = filepath.Clean(cfgFile)
	configFile, err := os.ReadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	cfg := &Config{
		App:       &App{},
		Server:    &Server{},
		DB:        &DB{},
		JWT:       &JWT{},
		Argon2:    &Argon2{},
		RateLimit: &RateLimit{},
		Solver:    &Solver{PageRank: &PageRank{}},
	}
	if err := json.Unmarshal(configFile, cfg); err != nil {
		return nil, fmt.Errorf("decode json config %s: %w", cfgFile, err)
	}

	return cfg, nil
}

func overrideWithEnv(cfg *Config) error {
	if url, ok := os.LookupEnv("URL"); ok {
		cfg.Server.URL = url
	}

	if portStr, ok := os.LookupEnv("PORT"); ok {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("parse PORT %q: %w", portStr, err)
		}
		cfg.Server.Port = port
	}

	if appEnv, ok := os.LookupEnv("ENV"); ok {
		cfg.App.Env = appEnv
	}

	if level, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.App.LogLevel = level
	}

	if key, ok := os.LookupEnv("KEY"); ok {
		cfg.App.Key = key
	}

	return nil
}

func (c *Config) validate() error {
	var errs []error

	if c.Server.Port <= 0 {
		errs = append(errs, errors.New("server.port must be positive"))
	}

	if c.DB.Driver == "" {
		errs = append(errs, errors.New("db.driver is required"))
	}

	if d := c.Solver.PageRank.Damping; d < 0 || d > 1 {
		errs = append(errs, fmt.Errorf("solver.pagerank.damping %v is outside [0, 1]", d))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
