// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"fincalc/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Server contains HTTP server settings
	Server ServerConfig `json:"server"`

	// Cache contains result cache settings
	Cache CacheConfig `json:"cache"`

	// Defaults contains default values for optional calculator inputs
	Defaults DefaultsConfig `json:"defaults"`

	// Estimator contains loan-amount estimator settings
	Estimator EstimatorConfig `json:"estimator"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`

	// ReadTimeoutSeconds bounds request reads
	ReadTimeoutSeconds int `json:"read_timeout_seconds"`

	// WriteTimeoutSeconds bounds response writes
	WriteTimeoutSeconds int `json:"write_timeout_seconds"`

	// IdleTimeoutSeconds bounds keep-alive connections
	IdleTimeoutSeconds int `json:"idle_timeout_seconds"`

	// RateLimit contains per-client rate limiting settings
	RateLimit RateLimitConfig `json:"rate_limit"`
}

// RateLimitConfig contains per-client rate limiting settings
type RateLimitConfig struct {
	// Enabled enables rate limiting
	Enabled bool `json:"enabled"`

	// Requests is the bucket capacity per refill window
	Requests int `json:"requests"`

	// WindowSeconds is the refill window
	WindowSeconds int `json:"window_seconds"`
}

// CacheConfig contains result cache settings
type CacheConfig struct {
	// Backend selects the cache implementation (memory, redis)
	Backend string `json:"backend"`

	// RedisAddr is the redis address when backend is redis
	RedisAddr string `json:"redis_addr"`

	// TTLSeconds is how long cached results live
	TTLSeconds int `json:"ttl_seconds"`
}

// DefaultsConfig contains default values for optional calculator inputs
type DefaultsConfig struct {
	// StandardDeduction is the default yearly standard deduction
	StandardDeduction float64 `json:"standard_deduction"`

	// MaxEMIPercent is the default income share banks allow for EMI
	MaxEMIPercent float64 `json:"max_emi_percent"`

	// CompoundingPerYear is the default FD compounding frequency
	CompoundingPerYear int `json:"compounding_per_year"`
}

// EstimatorConfig contains loan-amount estimator settings
type EstimatorConfig struct {
	// ModelPath is the path to the serialized model coefficients
	ModelPath string `json:"model_path"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	modelPath := filepath.Join(homeDir, ".fincalc", "loan_model.json")

	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Addr:                ":8080",
			ReadTimeoutSeconds:  15,
			WriteTimeoutSeconds: 15,
			IdleTimeoutSeconds:  60,
			RateLimit: RateLimitConfig{
				Enabled:       true,
				Requests:      60,
				WindowSeconds: 60,
			},
		},
		Cache: CacheConfig{
			Backend:    "memory",
			RedisAddr:  "localhost:6379",
			TTLSeconds: 300,
		},
		Defaults: DefaultsConfig{
			StandardDeduction:  50000,
			MaxEMIPercent:      50,
			CompoundingPerYear: 1,
		},
		Estimator: EstimatorConfig{
			ModelPath: modelPath,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
