package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/casegen/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaultsWhenDefaultFileMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvRedisAddr, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, DefaultAddr)
	}
	if cfg.Server.RequestTimeout.Duration != DefaultRequestTimeout {
		t.Errorf("RequestTimeout = %v, want %v", cfg.Server.RequestTimeout, DefaultRequestTimeout)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != DefaultMetricsPath {
		t.Errorf("Metrics = %+v", cfg.Metrics)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("Redis.Addr = %q, want empty", cfg.Redis.Addr)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv(EnvRedisAddr, "")
	path := writeConfig(t, `
[server]
addr = "127.0.0.1:9000"
request_timeout = "5s"

[redis]
addr = "redis:6379"
db = 2
key_prefix = "ci:"

[metrics]
enabled = false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.RequestTimeout.Duration != 5*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.Server.RequestTimeout)
	}
	if cfg.Redis.Addr != "redis:6379" || cfg.Redis.DB != 2 || cfg.Redis.KeyPrefix != "ci:" {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
	if cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled should be false")
	}
	if cfg.Metrics.Path != DefaultMetricsPath {
		t.Errorf("unset keys keep defaults, got Metrics.Path = %q", cfg.Metrics.Path)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv(EnvRedisAddr, "env-redis:6380")
	path := writeConfig(t, "[redis]\naddr = \"file-redis:6379\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Redis.Addr != "env-redis:6380" {
		t.Errorf("Redis.Addr = %q, want env value", cfg.Redis.Addr)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr errors.Code
	}{
		{
			name:    "explicit path missing",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.toml") },
			wantErr: errors.ErrCodeFileNotFound,
		},
		{
			name:    "malformed toml",
			path:    func(t *testing.T) string { return writeConfig(t, "[server\naddr = 1") },
			wantErr: errors.ErrCodeInvalidFormat,
		},
		{
			name:    "bad duration",
			path:    func(t *testing.T) string { return writeConfig(t, "[server]\nrequest_timeout = \"soon\"") },
			wantErr: errors.ErrCodeInvalidFormat,
		},
		{
			name:    "empty addr",
			path:    func(t *testing.T) string { return writeConfig(t, "[server]\naddr = \"\"") },
			wantErr: errors.ErrCodeInvalidInput,
		},
		{
			name:    "negative db",
			path:    func(t *testing.T) string { return writeConfig(t, "[redis]\ndb = -1") },
			wantErr: errors.ErrCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want code %s", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	got, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/xdg", "casegen", "config.toml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}
