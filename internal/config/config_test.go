package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

// chdirTemp moves into an empty temp dir so the default ./config.yaml is absent.
func chdirTemp(t *testing.T) {
	t.Helper()
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
}

const validYAML = `
gateway:
  base_url: "https://leads.example.com/api"
  page_limit: 20
  timeout: "3s"
  session_cookie_name: "sid"
  session_cookie: "abc123"

view:
  search_debounce: "250ms"
  refetch_after_mutation: true

server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"
  seed_leads: 40

log:
  level: "debug"
  format: "text"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Gateway
	if cfg.Gateway.BaseURL != "https://leads.example.com/api" {
		t.Errorf("gateway.base_url = %q", cfg.Gateway.BaseURL)
	}
	if cfg.Gateway.PageLimit != 20 {
		t.Errorf("gateway.page_limit = %d, want 20", cfg.Gateway.PageLimit)
	}
	if cfg.Gateway.Timeout != 3*time.Second {
		t.Errorf("gateway.timeout = %v, want 3s", cfg.Gateway.Timeout)
	}
	if cfg.Gateway.SessionCookieName != "sid" || cfg.Gateway.SessionCookie != "abc123" {
		t.Errorf("gateway session cookie = %q=%q", cfg.Gateway.SessionCookieName, cfg.Gateway.SessionCookie)
	}

	// View
	if cfg.View.SearchDebounce != 250*time.Millisecond {
		t.Errorf("view.search_debounce = %v, want 250ms", cfg.View.SearchDebounce)
	}
	if !cfg.View.RefetchAfterMutation {
		t.Error("view.refetch_after_mutation should be true")
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}
	if cfg.Server.SeedLeads != 40 {
		t.Errorf("server.seed_leads = %d, want 40", cfg.Server.SeedLeads)
	}
	if cfg.Server.Addr() != "127.0.0.1:9090" {
		t.Errorf("server.Addr() = %q", cfg.Server.Addr())
	}

	// Log
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "text")
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("LEADFLOW_API_URL", "http://127.0.0.1:7000")
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Gateway.BaseURL != "http://127.0.0.1:7000" {
		t.Errorf("gateway.base_url = %q (ENV override)", cfg.Gateway.BaseURL)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
}

func TestLoad_NoFile_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	chdirTemp(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Gateway.BaseURL != "http://localhost:8080" {
		t.Errorf("gateway.base_url = %q, want default", cfg.Gateway.BaseURL)
	}
	if cfg.Gateway.PageLimit != 10 {
		t.Errorf("gateway.page_limit = %d, want 10 (default)", cfg.Gateway.PageLimit)
	}
	if cfg.Gateway.SessionCookieName != "token" {
		t.Errorf("gateway.session_cookie_name = %q, want token", cfg.Gateway.SessionCookieName)
	}
	if cfg.View.SearchDebounce != 500*time.Millisecond {
		t.Errorf("view.search_debounce = %v, want 500ms (default)", cfg.View.SearchDebounce)
	}
	if cfg.View.RefetchAfterMutation {
		t.Error("view.refetch_after_mutation should default to false")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Server.SeedLeads != 25 {
		t.Errorf("server.seed_leads = %d, want 25 (default)", cfg.Server.SeedLeads)
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("LEADFLOW_PAGE_LIMIT", "25")
	t.Setenv("VIEW_SEARCH_DEBOUNCE", "1s")
	chdirTemp(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Gateway.PageLimit != 25 {
		t.Errorf("gateway.page_limit = %d, want 25", cfg.Gateway.PageLimit)
	}
	if cfg.View.SearchDebounce != time.Second {
		t.Errorf("view.search_debounce = %v, want 1s", cfg.View.SearchDebounce)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoad_InvalidValueFailsValidation(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, "gateway:\n  page_limit: 500\n")
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected validation error for page_limit = 500")
	}
	if !strings.Contains(err.Error(), "page_limit") {
		t.Errorf("error = %q, want mention of page_limit", err)
	}
}

// validConfig returns a Config that passes all validation checks.
func validConfig() Config {
	return Config{
		Gateway: GatewayConfig{
			BaseURL:           "http://localhost:8080",
			PageLimit:         10,
			Timeout:           10 * time.Second,
			SessionCookieName: "token",
		},
		View: ViewConfig{SearchDebounce: 500 * time.Millisecond},
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              8080,
			SeedLeads:         25,
			SessionCookieName: "token",
		},
		Log: LogConfig{Level: "info", Format: "json"},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"base url without scheme", func(c *Config) { c.Gateway.BaseURL = "localhost:8080" }},
		{"base url ftp scheme", func(c *Config) { c.Gateway.BaseURL = "ftp://example.com" }},
		{"base url without host", func(c *Config) { c.Gateway.BaseURL = "http://" }},
		{"page limit zero", func(c *Config) { c.Gateway.PageLimit = 0 }},
		{"page limit too large", func(c *Config) { c.Gateway.PageLimit = 101 }},
		{"timeout zero", func(c *Config) { c.Gateway.Timeout = 0 }},
		{"cookie without name", func(c *Config) {
			c.Gateway.SessionCookie = "abc"
			c.Gateway.SessionCookieName = " "
		}},
		{"debounce zero", func(c *Config) { c.View.SearchDebounce = 0 }},
		{"debounce negative", func(c *Config) { c.View.SearchDebounce = -time.Millisecond }},
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"seed negative", func(c *Config) { c.Server.SeedLeads = -1 }},
		{"server cookie without name", func(c *Config) {
			c.Server.SessionCookie = "abc"
			c.Server.SessionCookieName = ""
		}},
		{"cors negative max age", func(c *Config) { c.CORS.MaxAge = -1 }},
		{"cors wildcard with credentials", func(c *Config) {
			c.CORS.AllowedOrigins = "*"
			c.CORS.AllowCredentials = true
		}},
		{"unknown log level", func(c *Config) { c.Log.Level = "verbose" }},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestValidate_BoundaryValues(t *testing.T) {
	cfg := validConfig()
	cfg.Gateway.PageLimit = 1
	cfg.Server.Port = 1
	cfg.Server.SeedLeads = 0
	cfg.Log.Level = "DEBUG"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error for lower boundary values: %v", err)
	}

	cfg.Gateway.PageLimit = 100
	cfg.Server.Port = 65535
	cfg.Gateway.BaseURL = "https://leads.example.com"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error for upper boundary values: %v", err)
	}
}
