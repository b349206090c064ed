package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Host      string `env:"HOST" envDefault:"localhost"`
	Port      uint16 `env:"PORT" envDefault:"3000"`
	PublicDir string `env:"PUBLIC_DIR" envDefault:"public"`
	IsDebug   bool   `env:"DEBUG" envDefault:"false"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// Only set behind a reverse proxy that overwrites X-Forwarded-For and
	// X-Real-IP; otherwise clients pick their own address.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`

	// Sign-up rate limiting is enabled only when RedisURL is set.
	RedisURL                 string `env:"REDIS_URL"`
	SignUpRateLimitPerMinute uint16 `env:"SIGN_UP_RATE_LIMIT_PER_MINUTE" envDefault:"30"`

	SentryDsn         string `env:"SENTRY_DSN"`
	SentryEnvironment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"20s"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	if cfg.Port == 0 {
		return nil, fmt.Errorf("PORT must not be 0")
	}
	if cfg.PublicDir == "" {
		return nil, fmt.Errorf("PUBLIC_DIR must not be empty")
	}
	if cfg.RedisURL != "" && cfg.SignUpRateLimitPerMinute == 0 {
		return nil, fmt.Errorf("SIGN_UP_RATE_LIMIT_PER_MINUTE must be positive when REDIS_URL is set")
	}
	return cfg, nil
}

func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(int(c.Port)))
}

func (c *Config) IsRateLimitingEnabled() bool {
	return c.RedisURL != ""
}

func (c *Config) IsSentryEnabled() bool {
	return c.SentryDsn != ""
}
