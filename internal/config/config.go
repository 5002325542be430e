package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Shopify     ShopifyConfig
	Cache       CacheConfig
	LogLevel    string
}

// ShopifyConfig holds the Storefront API credentials. StoreDomain and
// AccessToken may legitimately be empty: the client reports a
// not-configured failure per call instead of the server refusing to boot,
// so the storefront can render a setup prompt.
type ShopifyConfig struct {
	StoreDomain string
	AccessToken string
	APIVersion  string
}

// CacheConfig is used for the optional Redis response cache.
// An empty RedisURL disables caching entirely.
type CacheConfig struct {
	RedisURL string
	TTL      time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SHOPIFY_API_VERSION", "2025-04")
	viper.SetDefault("CACHE_TTL_SECONDS", 300)

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Shopify: ShopifyConfig{
			StoreDomain: strings.TrimSpace(getEnvOrViper("SHOPIFY_STORE_DOMAIN", "")),
			AccessToken: strings.TrimSpace(getEnvOrViper("SHOPIFY_STOREFRONT_ACCESS_TOKEN", "")),
			APIVersion:  getEnvOrViper("SHOPIFY_API_VERSION", "2025-04"),
		},
		Cache: CacheConfig{
			RedisURL: strings.TrimSpace(getEnvOrViper("REDIS_URL", "")),
			TTL:      time.Duration(viper.GetInt("CACHE_TTL_SECONDS")) * time.Second,
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	if cfg.Cache.TTL <= 0 {
		cfg.Cache.TTL = 5 * time.Minute
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
