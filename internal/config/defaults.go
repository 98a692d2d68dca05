package config

import (
	"github.com/longevity-genie/pharmacology-mcp/internal/common"
	"github.com/longevity-genie/pharmacology-mcp/internal/gtp"
)

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "pharmacology-mcp",
			Port: 4280,
			Host: "localhost",
		},
		Upstream: UpstreamConfig{
			BaseURL: gtp.DefaultBaseURL,
			Timeout: "30s",
		},
		Logging: common.LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console"},
			FilePath:   "logs/pharmacology-mcp.log",
			MaxSizeMB:  1,
			MaxBackups: 3,
		},
	}
}
