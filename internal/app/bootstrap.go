package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
	"github.com/smartretail/product-api/internal/config"
	"github.com/smartretail/product-api/internal/middleware"
	"github.com/smartretail/product-api/internal/pkg/logging"
	"github.com/smartretail/product-api/internal/platform/db"
	"github.com/smartretail/product-api/internal/platform/router"
	"github.com/smartretail/product-api/internal/platform/validation"
)

const configFile = "config.json"

func Run(baseCtx context.Context) error {
	slog.Info("Initializing...")

	signalCtx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	appEnv := os.Getenv("ENV")
	logging.Setup(appEnv, os.Getenv("LOG_LEVEL"), os.Stderr)

	if appEnv != "production" {
		if err := env.Load(".env"); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("load env: %w", err)
			}
			slog.Info("No .env file found, using process environment.")
		}
	}

	opts, err := config.Load(configFile)
	if err != nil {
		return err
	}

	hanaCfg := db.HanaConfigFromEnv()
	conn, err := openDatabase(signalCtx, hanaCfg, opts.DB)
	if err != nil {
		return err
	}
	if conn != nil {
		defer conn.Close()
	}

	providers := &Providers{
		Router:    router.NewGoexpressRouter(),
		Validator: validation.NewGoPlaygroundValidator(),
	}

	middlewares := []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
	}

	apiServer := New(opts, conn, hanaCfg, providers, middlewares)
	if err := apiServer.Start(signalCtx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return apiServer.Shutdown()
}

// openDatabase opens the HANA pool when the connection settings are
// present. The server still starts without them: data routes then answer
// with connection_error, while /health and /tls-test stay usable. A failed
// warmup ping is logged, not fatal, because the database may come up later.
func openDatabase(ctx context.Context, hanaCfg *db.HanaConfig, opts *config.DBOptions) (*sql.DB, error) {
	if !hanaCfg.Complete() {
		slog.Warn("HANA connection settings are incomplete; product routes will fail.",
			"required", "HANA_ADDRESS, HANA_USER, HANA_PASSWORD")
		return nil, nil
	}

	conn, err := db.Open(hanaCfg, opts)
	if err != nil {
		return nil, err
	}

	if err := db.Warmup(ctx, conn, opts); err != nil {
		if ctx.Err() != nil {
			conn.Close()
			return nil, fmt.Errorf("database warmup: %w", err)
		}
		slog.Warn("Database is unreachable at startup.", "reason", err, slog.Any("hana", hanaCfg))
	}

	return conn, nil
}
