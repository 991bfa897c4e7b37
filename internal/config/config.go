package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Gateway GatewayConfig `yaml:"gateway"`
	View    ViewConfig    `yaml:"view"`
	Server  ServerConfig  `yaml:"server"`
	CORS    CORSConfig    `yaml:"cors"`
	Log     LogConfig     `yaml:"log"`
}

// GatewayConfig holds settings for the remote lead API client.
type GatewayConfig struct {
	BaseURL           string        `yaml:"base_url"            env:"LEADFLOW_API_URL"             env-default:"http://localhost:8080"`
	PageLimit         int           `yaml:"page_limit"          env:"LEADFLOW_PAGE_LIMIT"          env-default:"10"`
	Timeout           time.Duration `yaml:"timeout"             env:"LEADFLOW_API_TIMEOUT"         env-default:"10s"`
	SessionCookieName string        `yaml:"session_cookie_name" env:"LEADFLOW_SESSION_COOKIE_NAME" env-default:"token"`
	SessionCookie     string        `yaml:"session_cookie"      env:"LEADFLOW_SESSION_COOKIE"`
}

// ViewConfig holds list view behaviour settings.
type ViewConfig struct {
	SearchDebounce       time.Duration `yaml:"search_debounce"        env:"VIEW_SEARCH_DEBOUNCE"         env-default:"500ms"`
	RefetchAfterMutation bool          `yaml:"refetch_after_mutation" env:"VIEW_REFETCH_AFTER_MUTATION" env-default:"false"`
}

// ServerConfig holds settings for the local lead API server.
type ServerConfig struct {
	Host              string        `yaml:"host"                env:"SERVER_HOST"                env-default:"0.0.0.0"`
	Port              int           `yaml:"port"                env:"SERVER_PORT"                env-default:"8080"`
	ReadTimeout       time.Duration `yaml:"read_timeout"        env:"SERVER_READ_TIMEOUT"        env-default:"10s"`
	WriteTimeout      time.Duration `yaml:"write_timeout"       env:"SERVER_WRITE_TIMEOUT"       env-default:"30s"`
	IdleTimeout       time.Duration `yaml:"idle_timeout"        env:"SERVER_IDLE_TIMEOUT"        env-default:"60s"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"    env:"SERVER_SHUTDOWN_TIMEOUT"    env-default:"10s"`
	SeedLeads         int           `yaml:"seed_leads"          env:"SERVER_SEED_LEADS"          env-default:"25"`
	SessionCookieName string        `yaml:"session_cookie_name" env:"SERVER_SESSION_COOKIE_NAME" env-default:"token"`
	// SessionCookie, when set, is the only session value the server accepts.
	SessionCookie string `yaml:"session_cookie" env:"SERVER_SESSION_COOKIE"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CORSConfig holds CORS settings for the local lead API, which a browser
// front end on another origin calls with its session cookie.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"http://localhost:5173"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
	// File, when set, receives the log instead of stderr. The terminal client
	// uses it to keep log lines out of the table output.
	File string `yaml:"file" env:"LOG_FILE"`
}
