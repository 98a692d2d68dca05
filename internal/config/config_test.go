package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/longevity-genie/pharmacology-mcp/internal/gtp"
)

func TestLoadFromFile_Defaults(t *testing.T) {
	cfg, err := LoadFromFile("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Server.Name != "pharmacology-mcp" {
		t.Errorf("Expected default server name, got %q", cfg.Server.Name)
	}
	if cfg.Server.Port != 4280 {
		t.Errorf("Expected default port 4280, got %d", cfg.Server.Port)
	}
	if cfg.Upstream.BaseURL != gtp.DefaultBaseURL {
		t.Errorf("Expected default base URL, got %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.TimeoutDuration() != 30*time.Second {
		t.Errorf("Expected 30s timeout, got %v", cfg.Upstream.TimeoutDuration())
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected default log level info, got %q", cfg.Logging.Level)
	}
}

func TestLoadFromFile_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
port = 9000

[upstream]
timeout = "5s"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Expected port 9000 from file, got %d", cfg.Server.Port)
	}
	if cfg.Upstream.TimeoutDuration() != 5*time.Second {
		t.Errorf("Expected 5s timeout from file, got %v", cfg.Upstream.TimeoutDuration())
	}
	// Keys absent from the file keep their defaults
	if cfg.Upstream.BaseURL != gtp.DefaultBaseURL {
		t.Errorf("Expected default base URL to survive, got %q", cfg.Upstream.BaseURL)
	}
}

func TestLoadFromFile_EnvOverrides(t *testing.T) {
	t.Setenv("PHARM_UPSTREAM_BASE_URL", "http://localhost:8080/services")
	t.Setenv("PHARM_SERVER_PORT", "5555")
	t.Setenv("PHARM_LOG_LEVEL", "debug")

	cfg, err := LoadFromFile("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Upstream.BaseURL != "http://localhost:8080/services" {
		t.Errorf("Expected env base URL, got %q", cfg.Upstream.BaseURL)
	}
	if cfg.Server.Port != 5555 {
		t.Errorf("Expected env port 5555, got %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected env log level debug, got %q", cfg.Logging.Level)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("Expected error for missing config file")
	}
}

func TestTimeoutDuration_Fallback(t *testing.T) {
	for _, v := range []string{"", "bogus", "-5s", "0"} {
		u := UpstreamConfig{Timeout: v}
		if got := u.TimeoutDuration(); got != 30*time.Second {
			t.Errorf("Expected fallback 30s for %q, got %v", v, got)
		}
	}
}
