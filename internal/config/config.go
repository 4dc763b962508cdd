package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/novalith-hq/httpbridge/pkg/httpcall"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	LogLevel string `mapstructure:"log_level"`

	ClientTimeoutSeconds   int64         `mapstructure:"client_timeout_seconds"`
	MaxIdleConns           int           `mapstructure:"max_idle_conns"`
	IdleConnTimeoutSeconds int64         `mapstructure:"idle_conn_timeout_seconds"`
	TLSInsecure            bool          `mapstructure:"tls_insecure"`
	ClientTimeout          time.Duration `mapstructure:"-"`
	IdleConnTimeout        time.Duration `mapstructure:"-"`

	HistoryType            string        `mapstructure:"history_type"`
	HistoryPath            string        `mapstructure:"history_path"`
	HistoryTTLSeconds      int64         `mapstructure:"history_ttl_seconds"`
	HistoryCleanupSeconds  int64         `mapstructure:"history_cleanup_interval_seconds"`
	HistoryTTL             time.Duration `mapstructure:"-"`
	HistoryCleanupInterval time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "httpbridge")
	v.SetDefault("log_level", "info")
	v.SetDefault("client_timeout_seconds", 30)
	v.SetDefault("max_idle_conns", 100)
	v.SetDefault("idle_conn_timeout_seconds", 90)
	v.SetDefault("tls_insecure", false)
	v.SetDefault("history_type", "none")
	v.SetDefault("history_path", "./data/history.db")
	v.SetDefault("history_ttl_seconds", int64((7*24*time.Hour)/time.Second))
	v.SetDefault("history_cleanup_interval_seconds", int64((12*time.Hour)/time.Second))

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.ClientTimeoutSeconds < 0 {
		return nil, fmt.Errorf("invalid client_timeout_seconds (must not be negative)")
	}
	if cfg.IdleConnTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid idle_conn_timeout_seconds (must be positive seconds)")
	}
	if cfg.HistoryTTLSeconds <= 0 {
		return nil, fmt.Errorf("invalid history_ttl_seconds (must be positive seconds)")
	}
	if cfg.HistoryCleanupSeconds <= 0 {
		return nil, fmt.Errorf("invalid history_cleanup_interval_seconds (must be positive seconds)")
	}

	cfg.ClientTimeout = time.Duration(cfg.ClientTimeoutSeconds) * time.Second
	cfg.IdleConnTimeout = time.Duration(cfg.IdleConnTimeoutSeconds) * time.Second
	cfg.HistoryTTL = time.Duration(cfg.HistoryTTLSeconds) * time.Second
	cfg.HistoryCleanupInterval = time.Duration(cfg.HistoryCleanupSeconds) * time.Second

	return &cfg, nil
}

// ClientOptions maps the transport knobs onto httpcall client options.
func (c *Config) ClientOptions() httpcall.Options {
	return httpcall.Options{
		Timeout:         c.ClientTimeout,
		MaxIdleConns:    c.MaxIdleConns,
		IdleConnTimeout: c.IdleConnTimeout,
		TLSInsecure:     c.TLSInsecure,
	}
}
