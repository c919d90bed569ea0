package ops

import (
	"crypto/tls"
	"database/sql"
	"net/http"
	"slices"
	"time"

	"github.com/ferdiebergado/gopherkit/http/response"
	"github.com/smartretail/product-api/internal/pkg/message"
	"github.com/smartretail/product-api/internal/pkg/web"
	"github.com/smartretail/product-api/internal/platform/db"
)

const hdbDriverName = "hdb"

// Handler serves the operational endpoints: liveness and a TLS diagnostic
// against the configured database endpoint.
type Handler struct {
	cfg         *db.HanaConfig
	dialTimeout time.Duration
}

func NewHandler(cfg *db.HanaConfig, dialTimeout time.Duration) *Handler {
	return &Handler{
		cfg:         cfg,
		dialTimeout: dialTimeout,
	}
}

type HealthResponse struct {
	Status       string `json:"status"`
	DriverLoaded bool   `json:"driver_loaded"`
	DBConfigured bool   `json:"db_configured"`
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, &HealthResponse{
		Status:       "ok",
		DriverLoaded: slices.Contains(sql.Drivers(), hdbDriverName),
		DBConfigured: h.cfg.Complete(),
	})
}

// TLSTest probes the database endpoint from inside the running server.
// Certificate verification is always on here regardless of
// HANA_SSL_VALIDATE, so the report shows what a strict client would see.
func (h *Handler) TLSTest(w http.ResponseWriter, r *http.Request) {
	if h.cfg.Address == "" {
		web.Fail(w, http.StatusBadGateway, db.ErrUnavailable, web.CodeConnection, message.DBUnavailable, nil)
		return
	}

	tlsCfg := &tls.Config{ServerName: h.cfg.Address}
	report := Probe(r.Context(), h.cfg.Address, h.cfg.Port, h.dialTimeout, tlsCfg)
	response.JSON(w, http.StatusOK, report)
}
