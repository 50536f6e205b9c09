// file: internals/configs/config.go
package configs

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	Env      string // dev|prod
	LogLevel string

	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSSLMode          string
	DBStatementTimeout time.Duration

	JWTSecret        string
	JWTRefreshSecret string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration

	// first admin account, created at startup when the users table has no admin
	AdminEmail    string
	AdminPassword string

	TokenCleanupSchedule string // cron spec

	CORSOrigins  []string
	SentryDSN    string
	RateLimitMax int
	AutoMigrate  bool
}

// =======================
// ENV LOADER
// =======================

// LoadEnv reads .env when present; the system environment always wins.
func LoadEnv() (loadedFile bool) {
	return godotenv.Load() == nil
}

// Load builds the runtime config from the environment.
func Load() (*Config, error) {
	timeoutMS, err := strconv.Atoi(GetEnv("DB_STATEMENT_TIMEOUT_MS", "3000"))
	if err != nil || timeoutMS < 0 {
		return nil, fmt.Errorf("DB_STATEMENT_TIMEOUT_MS: invalid value %q", os.Getenv("DB_STATEMENT_TIMEOUT_MS"))
	}
	rateMax, err := strconv.Atoi(GetEnv("RATE_LIMIT_PER_MINUTE", "100"))
	if err != nil || rateMax <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE: invalid value %q", os.Getenv("RATE_LIMIT_PER_MINUTE"))
	}
	autoMigrate, err := strconv.ParseBool(GetEnv("AUTO_MIGRATE", "true"))
	if err != nil {
		return nil, fmt.Errorf("AUTO_MIGRATE: %w", err)
	}
	accessTTL, err := time.ParseDuration(GetEnv("ACCESS_TOKEN_TTL", "1h"))
	if err != nil || accessTTL <= 0 {
		return nil, fmt.Errorf("ACCESS_TOKEN_TTL: invalid value %q", os.Getenv("ACCESS_TOKEN_TTL"))
	}
	refreshTTL, err := time.ParseDuration(GetEnv("REFRESH_TOKEN_TTL", "168h"))
	if err != nil || refreshTTL <= 0 {
		return nil, fmt.Errorf("REFRESH_TOKEN_TTL: invalid value %q", os.Getenv("REFRESH_TOKEN_TTL"))
	}

	cfg := &Config{
		Port:                 GetEnv("PORT", "3000"),
		Env:                  strings.ToLower(GetEnv("APP_ENV", "dev")),
		LogLevel:             GetEnv("LOG_LEVEL", "info"),
		DBHost:               GetEnv("DB_HOST", "localhost"),
		DBPort:               GetEnv("DB_PORT", "5432"),
		DBUser:               GetEnv("DB_USER", "postgres"),
		DBPassword:           GetEnv("DB_PASSWORD"),
		DBName:               GetEnv("DB_NAME", "schooladmin"),
		DBSSLMode:            GetEnv("DB_SSLMODE", "require"),
		DBStatementTimeout:   time.Duration(timeoutMS) * time.Millisecond,
		JWTSecret:            GetEnv("JWT_SECRET"),
		JWTRefreshSecret:     GetEnv("JWT_REFRESH_SECRET"),
		AccessTokenTTL:       accessTTL,
		RefreshTokenTTL:      refreshTTL,
		AdminEmail:           strings.ToLower(strings.TrimSpace(GetEnv("ADMIN_EMAIL"))),
		AdminPassword:        GetEnv("ADMIN_PASSWORD"),
		TokenCleanupSchedule: GetEnv("TOKEN_CLEANUP_SCHEDULE", "@daily"),
		CORSOrigins:          splitList(GetEnv("CORS_ORIGINS", "http://localhost:5173")),
		SentryDSN:            GetEnv("SENTRY_DSN"),
		RateLimitMax:         rateMax,
		AutoMigrate:          autoMigrate,
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	if cfg.JWTRefreshSecret == "" {
		cfg.JWTRefreshSecret = cfg.JWTSecret
	}
	return cfg, nil
}

// DSN renders the postgres URL used by gorm and goose.
func (c *Config) DSN() string {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=schooladmin",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
	if c.DBStatementTimeout > 0 {
		dsn += fmt.Sprintf("&options=-c%%20statement_timeout%%3D%d", c.DBStatementTimeout.Milliseconds())
	}
	return dsn
}

func (c *Config) IsProd() bool { return c.Env == "prod" }

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func splitList(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
