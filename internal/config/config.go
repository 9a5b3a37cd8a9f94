// Package config loads the server configuration: defaults, then an optional
// YAML file, then GOPHOTEL_* environment variables (a .env file is read first).
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix префикс переменных окружения
const EnvPrefix = "GOPHOTEL_"

// minSecretLen минимальная длина секрета для HS256
const minSecretLen = 32

// Config конфигурация сервера
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	Auth      AuthConfig      `yaml:"auth"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// ServerConfig параметры HTTP сервера
type ServerConfig struct {
	Address         string        `yaml:"address"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig путь к SQLite базе
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// AuthConfig параметры токенов
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl"`
	// CleanupInterval как часто удаляются истекшие refresh токены
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// RateLimitConfig лимит на эндпоинты авторизации
type RateLimitConfig struct {
	Window   time.Duration `yaml:"window"`
	Requests int           `yaml:"requests"`
}

// LogConfig уровень и формат логов
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text или json
}

// MetricsConfig включает /metrics
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default возвращает конфигурацию по умолчанию. JWT секрет не задан.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Address:         ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{Path: "gophotel.db"},
		Log:      LogConfig{Level: "info", Format: "text"},
		Auth: AuthConfig{
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 30 * 24 * time.Hour,
			CleanupInterval: time.Hour,
		},
		RateLimit: RateLimitConfig{Requests: 10, Window: time.Minute},
		Metrics:   MetricsConfig{Enabled: true},
	}
}

// Load собирает конфигурацию. path может быть пустым: тогда только
// значения по умолчанию и окружение.
func Load(path string) (*Config, error) {
	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// ${VAR} в YAML раскрываются из окружения
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv переопределяет поля из GOPHOTEL_* переменных
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strVars := map[string]*string{
		"ADDR":       &c.Server.Address,
		"DB":         &c.Database.Path,
		"JWT_SECRET": &c.Auth.JWTSecret,
		"LOG_LEVEL":  &c.Log.Level,
		"LOG_FORMAT": &c.Log.Format,
	}
	for name, dst := range strVars {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}

	durVars := map[string]*time.Duration{
		"ACCESS_TOKEN_TTL":  &c.Auth.AccessTokenTTL,
		"REFRESH_TOKEN_TTL": &c.Auth.RefreshTokenTTL,
		"CLEANUP_INTERVAL":  &c.Auth.CleanupInterval,
		"RATE_LIMIT_WINDOW": &c.RateLimit.Window,
		"SHUTDOWN_TIMEOUT":  &c.Server.ShutdownTimeout,
	}
	for name, dst := range durVars {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s%s: %w", EnvPrefix, name, err)
		}
		*dst = d
	}

	if v, ok := lookup(EnvPrefix + "RATE_LIMIT_REQUESTS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sRATE_LIMIT_REQUESTS: %w", EnvPrefix, err)
		}
		c.RateLimit.Requests = n
	}

	if v, ok := lookup(EnvPrefix + "METRICS"); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sMETRICS: %w", EnvPrefix, err)
		}
		c.Metrics.Enabled = enabled
	}

	return nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Address == "" {
		errs = append(errs, errors.New("server.address is required"))
	}
	if c.Database.Path == "" {
		errs = append(errs, errors.New("database.path is required"))
	}
	if len(c.Auth.JWTSecret) < minSecretLen {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least %d bytes (set %sJWT_SECRET)", minSecretLen, EnvPrefix))
	}
	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		errs = append(errs, errors.New("token TTLs must be positive"))
	}
	if c.Auth.AccessTokenTTL >= c.Auth.RefreshTokenTTL {
		errs = append(errs, errors.New("auth.access_token_ttl must be shorter than auth.refresh_token_ttl"))
	}
	if c.Auth.CleanupInterval <= 0 {
		errs = append(errs, errors.New("auth.cleanup_interval must be positive"))
	}
	if c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0 {
		errs = append(errs, errors.New("rate_limit.requests and rate_limit.window must be positive"))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if f := strings.ToLower(c.Log.Format); f != "text" && f != "json" {
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

// SlogLevel разбирает log.level
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log.level %q: %w", c.Log.Level, err)
	}
	return level, nil
}

// NewLogger создает логгер по log секции
func (c *Config) NewLogger() *slog.Logger {
	level, _ := c.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
