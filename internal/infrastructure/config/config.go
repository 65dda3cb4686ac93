// Package config loads process configuration from the environment.
// Every required key missing at startup is a fatal condition: the process
// must not come up half-configured.
package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=3000"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs every issued token. Startup refuses to proceed
	// without it.
	JWTSecret string `env:"JWT_SECRET, required"`

	// TrustAdminClaim enables the admin gate's fast path (trust a token
	// that already claims admin, skipping the store re-check).
	TrustAdminClaim bool `env:"TRUST_ADMIN_CLAIM, default=false"`

	DB    DBConfig
	Redis RedisConfig
}

type DBConfig struct {
	Host     string `env:"DB_HOST,     required"`
	User     string `env:"DB_USER,     required"`
	Password string `env:"DB_PASSWORD, required"`
	Name     string `env:"DB_NAME,     required"`
	Port     int    `env:"DB_PORT,     required"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// DSN renders the PostgreSQL connection string with a 10-second
// connect timeout.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable connect_timeout=10",
		c.Host, c.Port, c.User, c.Password, c.Name,
	)
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
