// Package config loads the server configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Backend selects the record store implementation.
type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
)

// Config is the runtime configuration. Collection paths left empty are
// placed inside DataDir.
type Config struct {
	Port    string `env:"PORT" envDefault:"3001"`
	DataDir string `env:"DATA_DIR" envDefault:"data"`

	UsersPath     string `env:"USERS_PATH"`
	ProductsPath  string `env:"PRODUCTS_PATH"`
	CartsPath     string `env:"CARTS_PATH"`
	WishlistsPath string `env:"WISHLISTS_PATH"`
	SequencesPath string `env:"SEQUENCES_PATH"`

	Backend      Backend `env:"STORE_BACKEND" envDefault:"json"`
	DatabasePath string  `env:"DATABASE_PATH"`

	JWTSecret   string        `env:"JWT_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
	BcryptCost  int           `env:"BCRYPT_COST" envDefault:"10"`
	AdminEmails []string      `env:"ADMIN_EMAILS" envDefault:"admin@admin.com" envSeparator:","`

	CORSOrigin     string  `env:"CORS_ORIGIN" envDefault:"*"`
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"1"`
	RateLimitBurst float64 `env:"RATE_LIMIT_BURST" envDefault:"10"`

	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	inData := func(p *string, name string) {
		if *p == "" {
			*p = filepath.Join(c.DataDir, name)
		}
	}
	inData(&c.UsersPath, "users.json")
	inData(&c.ProductsPath, "products.json")
	inData(&c.CartsPath, "carts.json")
	inData(&c.WishlistsPath, "wishlists.json")
	inData(&c.SequencesPath, "sequences.json")
	inData(&c.DatabasePath, "store.db")
}

func (c *Config) validate() error {
	switch c.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", BackendJSON, BackendSQLite, c.Backend)
	}
	if c.BcryptCost < 4 || c.BcryptCost > 14 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", c.BcryptCost)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	if c.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1, got %v", c.RateLimitBurst)
	}
	return nil
}

// WeakSecret reports whether the JWT secret is missing or too short for
// HMAC-SHA256.
func (c Config) WeakSecret() bool {
	return len(c.JWTSecret) < 32
}
