package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration. Blank vendor
// credentials are valid: the pipeline then runs in pure-fallback mode.
type Config struct {
	VendorAPIKey  string
	VendorSecret  string
	VendorBaseURL string
	// VendorTimeout bounds each individual vendor call.
	VendorTimeout time.Duration
	// VendorRPS paces vendor calls; 0 disables pacing.
	VendorRPS float64

	// CacheBackend selects the destination-code cache: memory, sqlite,
	// json or postgres. CacheDSN is the backend-specific locator.
	CacheBackend string
	CacheDSN     string

	ListenAddr  string
	MetricsPort int
	LogLevel    string
}

// Load reads configuration from an optional config file and from
// STAYFINDER_* environment variables (e.g. STAYFINDER_VENDOR_API_KEY).
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("vendor.api_key", "")
	v.SetDefault("vendor.secret", "")
	v.SetDefault("vendor.base_url", "https://api.test.hotelbeds.com")
	v.SetDefault("vendor.timeout", "10s")
	v.SetDefault("vendor.rps", 0.0)
	v.SetDefault("cache.backend", "sqlite")
	v.SetDefault("cache.dsn", "stayfinder-cache.db")
	v.SetDefault("server.listen_addr", ":8080")
	v.SetDefault("server.metrics_port", 9091)
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("STAYFINDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		VendorAPIKey:  v.GetString("vendor.api_key"),
		VendorSecret:  v.GetString("vendor.secret"),
		VendorBaseURL: strings.TrimRight(v.GetString("vendor.base_url"), "/"),
		VendorTimeout: v.GetDuration("vendor.timeout"),
		VendorRPS:     v.GetFloat64("vendor.rps"),
		CacheBackend:  v.GetString("cache.backend"),
		CacheDSN:      v.GetString("cache.dsn"),
		ListenAddr:    v.GetString("server.listen_addr"),
		MetricsPort:   v.GetInt("server.metrics_port"),
		LogLevel:      v.GetString("log.level"),
	}

	switch cfg.CacheBackend {
	case "memory", "sqlite", "json", "postgres":
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}

	return cfg, nil
}
