package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/smartretail/product-api/internal/config"
)

const testConfig = `{
  "server": {
    "port": 8080,
    "read_timeout": "10s",
    "write_timeout": "30s",
    "idle_timeout": "2m",
    "shutdown_timeout": "10s",
    "max_body_bytes": 1048576
  },
  "db": {
    "max_open_conns": 8,
    "max_idle_conns": 4,
    "conn_max_idle_time": "5m",
    "conn_max_lifetime": "30m",
    "ping_timeout": "5s",
    "connect_retries": 3,
    "retry_backoff": "1s"
  },
  "probe": {
    "dial_timeout": "6s"
  }
}`

func writeTestConfig(t *testing.T) string {
	t.Helper()

	cfgFile := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(cfgFile, []byte(testConfig), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return cfgFile
}

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "")
	if err := os.Unsetenv("PORT"); err != nil {
		t.Fatalf("failed to unset PORT: %v", err)
	}

	opts, err := config.Load(writeTestConfig(t))
	if err != nil {
		t.Fatalf("config.Load(cfgFile) = %v, want nil error", err)
	}

	if opts.Server.Port != 8080 {
		t.Errorf("opts.Server.Port = %d, want: 8080", opts.Server.Port)
	}
	if opts.Server.ReadTimeout.Duration != 10*time.Second {
		t.Errorf("opts.Server.ReadTimeout = %v, want: 10s", opts.Server.ReadTimeout.Duration)
	}
	if opts.Server.IdleTimeout.Duration != 2*time.Minute {
		t.Errorf("opts.Server.IdleTimeout = %v, want: 2m", opts.Server.IdleTimeout.Duration)
	}
	if opts.DB.ConnectRetries != 3 {
		t.Errorf("opts.DB.ConnectRetries = %d, want: 3", opts.DB.ConnectRetries)
	}
	if opts.DB.RetryBackoff.Duration != time.Second {
		t.Errorf("opts.DB.RetryBackoff = %v, want: 1s", opts.DB.RetryBackoff.Duration)
	}
	if opts.Probe.DialTimeout.Duration != 6*time.Second {
		t.Errorf("opts.Probe.DialTimeout = %v, want: 6s", opts.Probe.DialTimeout.Duration)
	}
}

func TestLoad_PortOverride(t *testing.T) {
	t.Setenv("PORT", "9090")

	opts, err := config.Load(writeTestConfig(t))
	if err != nil {
		t.Fatalf("config.Load(cfgFile) = %v, want nil error", err)
	}

	if opts.Server.Port != 9090 {
		t.Errorf("opts.Server.Port = %d, want: 9090", opts.Server.Port)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	if _, err := config.Load(writeTestConfig(t)); err == nil {
		t.Error("config.Load(cfgFile) = nil, want an error for an invalid PORT")
	}
}

func TestLoad_SparseConfigBackfillsSections(t *testing.T) {
	t.Parallel()

	cfgFile := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(cfgFile, []byte(`{}`), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	opts, err := config.Load(cfgFile)
	if err != nil {
		t.Fatalf("config.Load(cfgFile) = %v, want nil error", err)
	}

	if opts.Server == nil {
		t.Error("opts.Server = nil, want a backfilled section")
	}
	if opts.DB == nil {
		t.Error("opts.DB = nil, want a backfilled section")
	}
	if opts.Probe == nil {
		t.Error("opts.Probe = nil, want a backfilled section")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("config.Load(cfgFile) = nil, want an error for a missing file")
	}
}
