package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// ConfigFileName is the default configuration file name.
	ConfigFileName = "rustnext.json"

	// DefaultHost is the default listen host.
	DefaultHost = "127.0.0.1"

	// DefaultPort is the default listen port.
	DefaultPort = 3000
)

// Config is the application configuration loaded from rustnext.json plus
// environment overrides.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Server configures the HTTP listener.
	Server ServerConfig `json:"server,omitempty"`

	// Static configures static file serving.
	Static StaticConfig `json:"static,omitempty"`

	// Auth configures token signing and session lifetime.
	Auth AuthConfig `json:"auth,omitempty"`

	// Features toggles optional subsystems.
	Features FeatureConfig `json:"features,omitempty"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	// Host is the listen host.
	Host string `json:"host,omitempty"`

	// Port is the listen port.
	Port int `json:"port,omitempty"`

	// Compression enables response compression.
	Compression bool `json:"compression,omitempty"`

	// ProxyHeaders promotes forwarded headers; enable behind a trusted proxy.
	ProxyHeaders bool `json:"proxy_headers,omitempty"`
}

// StaticConfig configures static file serving.
type StaticConfig struct {
	// Dir is the directory containing static files.
	Dir string `json:"dir,omitempty"`

	// Prefix is the URL prefix static files are served under.
	Prefix string `json:"prefix,omitempty"`
}

// AuthConfig configures authentication.
type AuthConfig struct {
	// JWTSecret signs session tokens.
	JWTSecret string `json:"jwt_secret,omitempty"`

	// SessionTTLSeconds is the session lifetime in seconds.
	SessionTTLSeconds int `json:"session_ttl_seconds,omitempty"`
}

// FeatureConfig toggles optional subsystems.
type FeatureConfig struct {
	// Metrics enables the Prometheus middleware.
	Metrics bool `json:"metrics,omitempty"`

	// Tracing enables the OpenTelemetry middleware.
	Tracing bool `json:"tracing,omitempty"`

	// HotReload enables the development live-reload endpoint.
	HotReload bool `json:"hot_reload,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		Static: StaticConfig{
			Dir:    "public",
			Prefix: "/static",
		},
		Auth: AuthConfig{
			SessionTTLSeconds: 3600,
		},
	}
}

// Load reads configuration: defaults, then the JSON file at path (or
// ConfigFileName in the working directory when path is empty; a missing file
// is not an error), then a .env file if present, then process environment
// variables. Later layers win.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = ConfigFileName
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	// .env is optional; absence is the normal case outside development.
	_ = godotenv.Load()
	applyEnv(&cfg)

	return cfg, nil
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("RUSTNEXT_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("RUSTNEXT_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("RUSTNEXT_STATIC_DIR"); v != "" {
		cfg.Static.Dir = v
	}
	if v := os.Getenv("RUSTNEXT_JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
}
