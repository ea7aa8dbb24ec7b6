package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	if config.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", config.Server.Port)
	}
	if config.Clients.Yahoo.BaseURL != "https://query1.finance.yahoo.com" {
		t.Errorf("default yahoo base URL = %q", config.Clients.Yahoo.BaseURL)
	}
	if config.Clients.Gemini.Model != "gemini-2.0-flash" {
		t.Errorf("default gemini model = %q", config.Clients.Gemini.Model)
	}
	if config.IsProduction() {
		t.Error("default environment must not be production")
	}
}

func TestLoadConfigFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "agrilens.toml")
	content := `
environment = "production"

[server]
port = 9090

[clients.yahoo]
rate_limit = 2
timeout = "10s"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", config.Server.Port)
	}
	if config.Clients.Yahoo.RateLimit != 2 {
		t.Errorf("rate limit = %d, want 2", config.Clients.Yahoo.RateLimit)
	}
	if config.Clients.Yahoo.GetTimeout().Seconds() != 10 {
		t.Errorf("timeout = %v, want 10s", config.Clients.Yahoo.GetTimeout())
	}
	if !config.IsProduction() {
		t.Error("expected production environment")
	}
	// Untouched keys keep defaults
	if config.Server.Host != "0.0.0.0" {
		t.Errorf("host = %q, want default", config.Server.Host)
	}
}

func TestLoadConfigSkipsMissingFiles(t *testing.T) {
	config, err := LoadConfig("/nonexistent/agrilens.toml")
	if err != nil {
		t.Fatalf("missing file must be skipped, got %v", err)
	}
	if config.Server.Port != 8080 {
		t.Errorf("port = %d, want default", config.Server.Port)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("AGRILENS_PORT", "7070")
	t.Setenv("AGRILENS_LOG_LEVEL", "debug")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Server.Port != 7070 {
		t.Errorf("port = %d, want 7070", config.Server.Port)
	}
	if config.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", config.Logging.Level)
	}
}

func TestGetTimeoutFallback(t *testing.T) {
	c := YahooConfig{Timeout: "not-a-duration"}
	if c.GetTimeout().Seconds() != 30 {
		t.Errorf("invalid timeout should fall back to 30s, got %v", c.GetTimeout())
	}
}

func TestResolveAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	key, err := ResolveAPIKey("gemini_api_key", "config-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "env-key" {
		t.Errorf("key = %q, want env value to win", key)
	}
}

func TestResolveAPIKeyFallback(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("AGRILENS_GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	key, err := ResolveAPIKey("gemini_api_key", "config-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "config-key" {
		t.Errorf("key = %q, want config fallback", key)
	}

	if _, err := ResolveAPIKey("gemini_api_key", ""); err == nil {
		t.Error("expected error when no key is available anywhere")
	}
}
