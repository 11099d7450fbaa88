package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"
	_ "time/tzdata" // timezone lookups in minimal images

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the gateway configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Backends  BackendConfig   `yaml:"backends"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// Timezone is the IANA location auction schedules are written in.
	Timezone string `yaml:"timezone"`
}

// BackendConfig holds the remote service addresses.
type BackendConfig struct {
	AccountsURL    string        `yaml:"accounts_url"`
	MarketplaceURL string        `yaml:"marketplace_url"`
	Timeout        time.Duration `yaml:"timeout"`
	ServiceToken   string        `yaml:"service_token"`
}

// DashboardConfig holds live dashboard settings.
type DashboardConfig struct {
	PollInterval time.Duration `yaml:"poll_interval"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// TelemetryConfig holds OpenTelemetry settings. An empty endpoint disables export.
type TelemetryConfig struct {
	ServiceName    string `yaml:"service_name"`
	ServiceVersion string `yaml:"service_version"`
	OTLPEndpoint   string `yaml:"otlp_endpoint"`
	Insecure       bool   `yaml:"insecure"`
}

// Default returns the configuration used when no file overrides a value.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ShutdownTimeout: 15 * time.Second,
			Timezone:        "UTC",
		},
		Backends: BackendConfig{
			AccountsURL:    "http://localhost:8081",
			MarketplaceURL: "http://localhost:8082",
			Timeout:        10 * time.Second,
		},
		Dashboard: DashboardConfig{
			PollInterval: 30 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
		Telemetry: TelemetryConfig{
			ServiceName:    "spicegate",
			ServiceVersion: "0.1.0",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file, an
// optional .env file and SPICEGATE_* environment variables, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	dur := func(key string, dst *time.Duration) error {
		if v, ok := lookup(key); ok && v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = d
		}
		return nil
	}

	// PORT is honoured for platforms that inject it.
	for _, key := range []string{"PORT", "SPICEGATE_PORT"} {
		if v, ok := lookup(key); ok && v != "" {
			p, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			c.Server.Port = p
		}
	}

	str("SPICEGATE_TIMEZONE", &c.Server.Timezone)
	str("SPICEGATE_ACCOUNTS_URL", &c.Backends.AccountsURL)
	str("SPICEGATE_MARKETPLACE_URL", &c.Backends.MarketplaceURL)
	str("SPICEGATE_SERVICE_TOKEN", &c.Backends.ServiceToken)
	str("SPICEGATE_LOG_LEVEL", &c.Log.Level)
	str("SPICEGATE_OTLP_ENDPOINT", &c.Telemetry.OTLPEndpoint)
	str("SPICEGATE_SERVICE_NAME", &c.Telemetry.ServiceName)
	str("SPICEGATE_SERVICE_VERSION", &c.Telemetry.ServiceVersion)

	if v, ok := lookup("SPICEGATE_OTLP_INSECURE"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SPICEGATE_OTLP_INSECURE: %w", err)
		}
		c.Telemetry.Insecure = b
	}

	if err := dur("SPICEGATE_SHUTDOWN_TIMEOUT", &c.Server.ShutdownTimeout); err != nil {
		return err
	}
	if err := dur("SPICEGATE_BACKEND_TIMEOUT", &c.Backends.Timeout); err != nil {
		return err
	}
	return dur("SPICEGATE_POLL_INTERVAL", &c.Dashboard.PollInterval)
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	for name, raw := range map[string]string{
		"accounts_url":    c.Backends.AccountsURL,
		"marketplace_url": c.Backends.MarketplaceURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("backends.%s %q must be an absolute http(s) URL", name, raw)
		}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive")
	}
	if c.Backends.Timeout <= 0 {
		return fmt.Errorf("backends.timeout must be positive")
	}
	if c.Dashboard.PollInterval < time.Second {
		return fmt.Errorf("dashboard.poll_interval %s is below one second", c.Dashboard.PollInterval)
	}
	return nil
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Server.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", c.Server.Timezone, err)
	}
	return loc, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
