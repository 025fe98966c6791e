// Package config loads casegen settings from a TOML file.
//
// The file lives at ~/.config/casegen/config.toml unless a path is given
// explicitly. Every setting has a default, so a missing default file is not
// an error. CASEGEN_REDIS_ADDR overrides the Redis address from the file.
//
//	[server]
//	addr = ":8080"
//	request_timeout = "30s"
//
//	[redis]
//	addr = "localhost:6379"
//	key_prefix = "casegen:"
//
//	[metrics]
//	enabled = true
//	path = "/metrics"
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/casegen/pkg/errors"
)

const (
	appName = "casegen"

	// EnvRedisAddr overrides Redis.Addr.
	EnvRedisAddr = "CASEGEN_REDIS_ADDR"

	DefaultAddr           = ":8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultKeyPrefix      = "casegen:"
	DefaultMetricsPath    = "/metrics"
)

// Config holds all settings.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Redis   RedisConfig   `toml:"redis"`
	Metrics MetricsConfig `toml:"metrics"`
	Cache   CacheConfig   `toml:"cache"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr           string   `toml:"addr"`
	RequestTimeout Duration `toml:"request_timeout"`
}

// RedisConfig configures the shared batch cache. An empty Addr disables it.
type RedisConfig struct {
	Addr      string   `toml:"addr"`
	Password  string   `toml:"password"`
	DB        int      `toml:"db"`
	KeyPrefix string   `toml:"key_prefix"`
	Timeout   Duration `toml:"dial_timeout"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// CacheConfig configures the local file cache used by the CLI.
type CacheConfig struct {
	Dir string `toml:"dir"`
}

// Duration is a time.Duration written as a string such as "30s".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           DefaultAddr,
			RequestTimeout: Duration{DefaultRequestTimeout},
		},
		Redis: RedisConfig{
			KeyPrefix: DefaultKeyPrefix,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    DefaultMetricsPath,
		},
	}
}

// DefaultPath returns the XDG config location (~/.config/casegen/config.toml).
func DefaultPath() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config at path on top of Default. With an empty path the
// default location is tried and a missing file yields the defaults; an
// explicit path that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			switch {
			case os.IsNotExist(err) && !explicit:
			case os.IsNotExist(err):
				return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
			default:
				return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
			}
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if addr := os.Getenv(EnvRedisAddr); addr != "" {
		c.Redis.Addr = addr
	}
}

// Validate checks settings that have no sensible fallback.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidInput, "server.addr must not be empty")
	}
	if c.Server.RequestTimeout.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "server.request_timeout must not be negative")
	}
	if c.Redis.DB < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "redis.db must not be negative")
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
	return nil
}
