package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config application configuration structure
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Snarkify SnarkifyConfig `yaml:"snarkify"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig HTTP facade server configuration
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// SnarkifyConfig Snarkify proving service connection configuration.
// Immutable after load; the adapter shares it read-only across calls.
type SnarkifyConfig struct {
	BaseURL              string `yaml:"baseUrl"`
	APIKey               string `yaml:"apiKey"`
	ServiceID            string `yaml:"serviceId"`
	ConnectionTimeoutSec int    `yaml:"connectionTimeoutSec"` // per-request timeout (seconds)
	RetryWaitTimeSec     int    `yaml:"retryWaitTimeSec"`     // backoff base wait (seconds)
	RetryCount           int    `yaml:"retryCount"`           // max retries for transient failures
}

// LoggingConfig logging configuration
type LoggingConfig struct {
	Level string `yaml:"level"`
}

var AppConfig *Config

// LoadConfig Load configuration file
func LoadConfig(configPath string) error {
	// if configuration file path empty, use default path
	if configPath == "" {
		configPath = "config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	applyDefaults(cfg)
	applyEnvOverrides(cfg)

	if cfg.Snarkify.BaseURL == "" {
		return fmt.Errorf("snarkify.baseUrl is required in %s", configPath)
	}

	AppConfig = cfg
	return nil
}

// applyDefaults fills unset fields with production defaults
func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8090
	}
	if cfg.Snarkify.ConnectionTimeoutSec <= 0 {
		cfg.Snarkify.ConnectionTimeoutSec = 300
	}
	if cfg.Snarkify.RetryWaitTimeSec <= 0 {
		cfg.Snarkify.RetryWaitTimeSec = 10
	}
	if cfg.Snarkify.RetryCount <= 0 {
		cfg.Snarkify.RetryCount = 3
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

// applyEnvOverrides lets secrets come from the environment instead of
// the config file
func applyEnvOverrides(cfg *Config) {
	if key := os.Getenv("SNARKIFY_API_KEY"); key != "" {
		cfg.Snarkify.APIKey = key
	}
	if serviceID := os.Getenv("SNARKIFY_SERVICE_ID"); serviceID != "" {
		cfg.Snarkify.ServiceID = serviceID
	}
}
