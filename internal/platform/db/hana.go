package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/smartretail/product-api/internal/config"
)

const (
	driverName         = "hdb"
	defaultPort        = 443
	defaultSchema      = "SMART_RETAIL1"
	defaultRetries     = 3
	defaultBackoff     = time.Second
	defaultPingTimeout = 5 * time.Second
)

// HanaConfig holds the SAP HANA connection settings taken from the
// environment.
type HanaConfig struct {
	Address      string
	Port         int
	User         string
	Password     string
	Encrypt      bool
	ValidateCert bool
	Schema       string
}

// HanaConfigFromEnv reads the HANA_* environment variables, applying the
// defaults for port, encryption and schema. Use Complete to check whether
// the result can actually open a connection.
func HanaConfigFromEnv() *HanaConfig {
	port := defaultPort
	if portStr, ok := os.LookupEnv("HANA_PORT"); ok {
		if p, err := strconv.Atoi(portStr); err == nil {
			port = p
		} else {
			slog.Warn("Invalid HANA_PORT, using default.", "value", portStr, "default", defaultPort)
		}
	}

	schema := os.Getenv("HANA_SCHEMA")
	if schema == "" {
		schema = defaultSchema
	}

	return &HanaConfig{
		Address:      os.Getenv("HANA_ADDRESS"),
		Port:         port,
		User:         os.Getenv("HANA_USER"),
		Password:     os.Getenv("HANA_PASSWORD"),
		Encrypt:      envBool("HANA_ENCRYPT", true),
		ValidateCert: envBool("HANA_SSL_VALIDATE", false),
		Schema:       schema,
	}
}

// Complete reports whether the settings required to open a connection are
// present.
func (c *HanaConfig) Complete() bool {
	return c.Address != "" && c.User != "" && c.Password != ""
}

// DSN renders the config as a go-hdb connection string.
func (c *HanaConfig) DSN() string {
	u := &url.URL{
		Scheme: driverName,
		User:   url.UserPassword(c.User, c.Password),
		Host:   net.JoinHostPort(c.Address, strconv.Itoa(c.Port)),
	}

	if c.Encrypt {
		q := url.Values{}
		q.Set("TLSServerName", c.Address)
		if !c.ValidateCert {
			q.Set("TLSInsecureSkipVerify", "true")
		}
		u.RawQuery = q.Encode()
	}

	return u.String()
}

func (c *HanaConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("address", c.Address),
		slog.Int("port", c.Port),
		slog.String("user", c.User),
		slog.Bool("encrypt", c.Encrypt),
		slog.Bool("validate_cert", c.ValidateCert),
		slog.String("schema", c.Schema),
	)
}

// Open creates the database handle and applies the pool settings. The
// connection is established lazily; use Warmup to verify reachability.
func Open(cfg *HanaConfig, opts *config.DBOptions) (*sql.DB, error) {
	if !cfg.Complete() {
		return nil, fmt.Errorf("%w: set HANA_ADDRESS, HANA_PORT, HANA_USER, HANA_PASSWORD", ErrUnavailable)
	}

	conn, err := sql.Open(driverName, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(opts.MaxOpenConns)
	conn.SetMaxIdleConns(opts.MaxIdleConns)
	conn.SetConnMaxIdleTime(opts.ConnMaxIdleTime.Duration)
	conn.SetConnMaxLifetime(opts.ConnMaxLifetime.Duration)

	return conn, nil
}

// Warmup pings the database, retrying with a linearly growing backoff
// (attempt number times the base delay). It returns the last ping error
// when all attempts fail, or the context error when canceled.
func Warmup(ctx context.Context, conn *sql.DB, opts *config.DBOptions) error {
	retries := opts.ConnectRetries
	if retries <= 0 {
		retries = defaultRetries
	}
	backoff := opts.RetryBackoff.Duration
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	pingTimeout := opts.PingTimeout.Duration
	if pingTimeout <= 0 {
		pingTimeout = defaultPingTimeout
	}

	slog.Info("Connecting to the database...")

	var lastErr error
	for attempt := 1; attempt <= retries; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = conn.PingContext(pingCtx)
		cancel()

		if lastErr == nil {
			slog.Info("Connected to the database.", "attempt", attempt)
			return nil
		}

		slog.Warn("Database ping failed.", "attempt", attempt, "retries", retries, "reason", lastErr)

		if attempt == retries {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff * time.Duration(attempt)):
		}
	}

	return fmt.Errorf("connect to database after %d attempts: %w", retries, lastErr)
}

func envBool(key string, fallback bool) bool {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	switch val {
	case "1", "true", "yes", "TRUE", "True", "YES", "Yes":
		return true
	default:
		return false
	}
}
