// Package config loads service settings from .env files and the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/tair/starwars-favorites/internal/starwars/repository"
	"github.com/tair/starwars-favorites/pkg/database"
)

// Storage backends
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds the service configuration
type Config struct {
	HTTPPort       int
	Environment    string
	LogLevel       string
	ServiceName    string
	RequestTimeout time.Duration

	TracingEnabled bool
	JaegerEndpoint string

	StorageType string
	Database    database.Config

	RedisAddr string
	CacheTTL  time.Duration

	KafkaBrokers []string
	KafkaTopic   string
	KafkaGroupID string
}

// IsDevelopment reports whether logs should be pretty printed
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// CacheConfig returns the catalog cache settings
func (c *Config) CacheConfig() repository.CacheConfig {
	return repository.CacheConfig{TTL: c.CacheTTL}
}

// LoadEnvFiles loads .env files into the process environment. Missing
// files are ignored and existing variables are never overwritten.
func LoadEnvFiles(files ...string) {
	if len(files) == 0 {
		files = []string{".env", ".env.local"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// New returns a viper instance reading the environment with service defaults
func New() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault("http_port", 3000)
	v.SetDefault("environment", "production")
	v.SetDefault("log_level", "info")
	v.SetDefault("otel_service_name", "starwars-service")
	v.SetDefault("request_timeout", 30*time.Second)
	v.SetDefault("tracing_enabled", false)
	v.SetDefault("jaeger_endpoint", "")
	v.SetDefault("storage_type", StoragePostgres)
	v.SetDefault("database_url", "")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "postgres")
	v.SetDefault("db_name", "starwars")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("db_debug", false)
	v.SetDefault("redis_addr", "")
	v.SetDefault("cache_ttl", repository.DefaultCacheConfig().TTL)
	v.SetDefault("kafka_brokers", "")
	v.SetDefault("kafka_topic", "favorite-events")
	v.SetDefault("kafka_group_id", "starwars-events")

	return v
}

// Load builds a Config from v and validates it
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		HTTPPort:       v.GetInt("http_port"),
		Environment:    v.GetString("environment"),
		LogLevel:       v.GetString("log_level"),
		ServiceName:    v.GetString("otel_service_name"),
		RequestTimeout: v.GetDuration("request_timeout"),
		TracingEnabled: v.GetBool("tracing_enabled"),
		JaegerEndpoint: v.GetString("jaeger_endpoint"),
		StorageType:    strings.ToLower(v.GetString("storage_type")),
		Database: database.Config{
			URL:      v.GetString("database_url"),
			Host:     v.GetString("db_host"),
			Port:     v.GetString("db_port"),
			User:     v.GetString("db_user"),
			Password: v.GetString("db_password"),
			DBName:   v.GetString("db_name"),
			SSLMode:  v.GetString("db_sslmode"),
			Debug:    v.GetBool("db_debug"),
		},
		RedisAddr:    v.GetString("redis_addr"),
		CacheTTL:     v.GetDuration("cache_ttl"),
		KafkaBrokers: splitList(v.GetString("kafka_brokers")),
		KafkaTopic:   v.GetString("kafka_topic"),
		KafkaGroupID: v.GetString("kafka_group_id"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT %d", c.HTTPPort)
	}
	switch c.StorageType {
	case StoragePostgres, StorageMemory:
	default:
		return fmt.Errorf("invalid STORAGE_TYPE %q: want %s or %s", c.StorageType, StoragePostgres, StorageMemory)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("invalid REQUEST_TIMEOUT %s", c.RequestTimeout)
	}
	return nil
}

// splitList splits a comma separated list, dropping empty entries
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
