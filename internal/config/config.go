package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/longevity-genie/pharmacology-mcp/internal/common"
)

// Config represents the application configuration.
type Config struct {
	Server   ServerConfig         `toml:"server"`
	Upstream UpstreamConfig       `toml:"upstream"`
	Logging  common.LoggingConfig `toml:"logging"`
}

// ServerConfig contains MCP server settings.
type ServerConfig struct {
	Name string `toml:"name"`
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

// UpstreamConfig contains Guide to Pharmacology web service settings.
type UpstreamConfig struct {
	BaseURL string `toml:"base_url"`
	Timeout string `toml:"timeout"`
}

// TimeoutDuration parses the configured timeout, falling back to 30s
// when the value is missing or malformed.
func (u UpstreamConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(u.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	config := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies PHARM_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if port := os.Getenv("PHARM_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("PHARM_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if baseURL := os.Getenv("PHARM_UPSTREAM_BASE_URL"); baseURL != "" {
		config.Upstream.BaseURL = baseURL
	}
	if timeout := os.Getenv("PHARM_UPSTREAM_TIMEOUT"); timeout != "" {
		config.Upstream.Timeout = timeout
	}
	if level := os.Getenv("PHARM_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if filePath := os.Getenv("PHARM_LOG_FILE"); filePath != "" {
		config.Logging.FilePath = filePath
	}
}
