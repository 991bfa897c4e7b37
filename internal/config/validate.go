package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

const maxPageLimit = 100

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Gateway.validate(); err != nil {
		return fmt.Errorf("gateway: %w", err)
	}
	if err := c.View.validate(); err != nil {
		return fmt.Errorf("view: %w", err)
	}
	if err := c.Server.validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.CORS.validate(); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

func (g *GatewayConfig) validate() error {
	u, err := url.Parse(g.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url must use http or https (got %q)", g.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("base_url must include a host (got %q)", g.BaseURL)
	}
	if g.PageLimit < 1 || g.PageLimit > maxPageLimit {
		return fmt.Errorf("page_limit must be between 1 and %d (got %d)", maxPageLimit, g.PageLimit)
	}
	if g.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", g.Timeout)
	}
	if g.SessionCookie != "" && strings.TrimSpace(g.SessionCookieName) == "" {
		return fmt.Errorf("session_cookie_name is required when session_cookie is set")
	}
	return nil
}

func (v *ViewConfig) validate() error {
	if v.SearchDebounce <= 0 {
		return fmt.Errorf("search_debounce must be > 0 (got %v)", v.SearchDebounce)
	}
	return nil
}

func (s *ServerConfig) validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535 (got %d)", s.Port)
	}
	if s.SeedLeads < 0 {
		return fmt.Errorf("seed_leads must be >= 0 (got %d)", s.SeedLeads)
	}
	if s.SessionCookie != "" && strings.TrimSpace(s.SessionCookieName) == "" {
		return fmt.Errorf("session_cookie_name is required when session_cookie is set")
	}
	return nil
}

func (c *CORSConfig) validate() error {
	if c.MaxAge < 0 {
		return fmt.Errorf("max_age must be >= 0 (got %d)", c.MaxAge)
	}
	if c.AllowCredentials && strings.Contains(c.AllowedOrigins, "*") {
		return fmt.Errorf("allowed_origins must not contain * when allow_credentials is set")
	}
	return nil
}

func (l *LogConfig) validate() error {
	if !slices.Contains(logLevels, strings.ToLower(l.Level)) {
		return fmt.Errorf("level must be one of %v (got %q)", logLevels, l.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(l.Format)) {
		return fmt.Errorf("format must be one of %v (got %q)", logFormats, l.Format)
	}
	return nil
}
