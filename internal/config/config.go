package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	_ "github.com/joho/godotenv/autoload"
)

// Global singleton so init-order dependent packages can reach the loaded config.
var globalConfig *Config

// Config holds all environment backed configuration for opal-server.
type Config struct {
	// HTTP Server
	HTTPPort    int    `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort int    `env:"METRICS_PORT" envDefault:"9091"`
	DatabaseURL string `env:"DATABASE_URL,notEmpty"`

	// Identity provider (OIDC)
	JWKSURL             string        `env:"JWKS_URL,notEmpty"`
	Issuer              string        `env:"ISSUER,notEmpty"`
	Audience            string        `env:"AUDIENCE,notEmpty"`
	RefreshJWKSInterval time.Duration `env:"JWKS_REFRESH_INTERVAL" envDefault:"5m"`
	AuthClockSkew       time.Duration `env:"AUTH_CLOCK_SKEW" envDefault:"30s"`

	// Protected path prefixes outside the /v1 API surface, comma separated.
	ProtectedPathPrefixes []string `env:"PROTECTED_PATH_PREFIXES" envSeparator:"," envDefault:"/dashboard,/payment"`
	ProtectedExactPaths   []string `env:"PROTECTED_EXACT_PATHS" envSeparator:"," envDefault:"/api/payment"`

	// Video storage (S3 compatible). Presigning is disabled when the bucket is empty.
	S3Bucket          string        `env:"S3_BUCKET"`
	S3Region          string        `env:"S3_REGION" envDefault:"us-east-1"`
	S3Endpoint        string        `env:"S3_ENDPOINT"`
	S3AccessKeyID     string        `env:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string        `env:"S3_SECRET_ACCESS_KEY"`
	S3PresignTTL      time.Duration `env:"S3_PRESIGN_TTL" envDefault:"15m"`

	// Observability / Logging
	OTLPEndpoint     string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName      string `env:"SERVICE_NAME" envDefault:"opal-server"`
	ServiceNamespace string `env:"SERVICE_NAMESPACE" envDefault:"opal"`
	Environment      string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string `env:"LOG_FORMAT" envDefault:"console"`

	// Features
	AutoMigrate bool `env:"AUTO_MIGRATE" envDefault:"true"`

	// Internal
	EnvReloadedAt time.Time
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if _, err := url.ParseRequestURI(cfg.JWKSURL); err != nil {
		return nil, fmt.Errorf("invalid JWKS_URL: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.EnvReloadedAt = time.Now()

	globalConfig = cfg

	return cfg, nil
}

// GetGlobal returns the last successfully loaded configuration, or nil.
func GetGlobal() *Config {
	return globalConfig
}

// PresignEnabled reports whether video source presigning is configured.
func (c *Config) PresignEnabled() bool {
	return c.S3Bucket != ""
}
