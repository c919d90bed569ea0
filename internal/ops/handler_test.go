package ops_test

import (
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	_ "github.com/SAP/go-hdb/driver"
	"github.com/smartretail/product-api/internal/ops"
	"github.com/smartretail/product-api/internal/pkg/web"
	"github.com/smartretail/product-api/internal/platform/db"
)

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		cfg              *db.HanaConfig
		wantDBConfigured bool
	}{
		{
			name: "configured database",
			cfg: &db.HanaConfig{
				Address:  "hana.example.com",
				Port:     443,
				User:     "api",
				Password: "secret",
			},
			wantDBConfigured: true,
		},
		{
			name:             "unconfigured database",
			cfg:              &db.HanaConfig{Port: 443},
			wantDBConfigured: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := ops.NewHandler(tt.cfg, time.Second)

			req := httptest.NewRequest(http.MethodGet, "/health", http.NoBody)
			rec := httptest.NewRecorder()

			h.Health(rec, req)

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != http.StatusOK {
				t.Fatalf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusOK)
			}
			web.AssertContentType(t, res)

			body := web.DecodeJSONResponse(t, res)
			if got := body["status"]; got != "ok" {
				t.Errorf(`body["status"] = %v, want: "ok"`, got)
			}
			if got := body["driver_loaded"]; got != true {
				t.Errorf(`body["driver_loaded"] = %v, want: true`, got)
			}
			if got := body["db_configured"]; got != tt.wantDBConfigured {
				t.Errorf(`body["db_configured"] = %v, want: %v`, got, tt.wantDBConfigured)
			}
		})
	}
}

func TestHandler_TLSTest_SelfSignedEndpoint(t *testing.T) {
	t.Parallel()

	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	host, port := splitAddr(t, ts.Listener.Addr().String())

	h := ops.NewHandler(&db.HanaConfig{
		Address:  host,
		Port:     port,
		User:     "api",
		Password: "secret",
	}, 2*time.Second)

	req := httptest.NewRequest(http.MethodGet, "/tls-test", http.NoBody)
	rec := httptest.NewRecorder()

	h.TLSTest(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusOK)
	}

	body := web.DecodeJSONResponse(t, res)
	if got := body["tcp"]; got != "ok" {
		t.Errorf(`body["tcp"] = %v, want: "ok"`, got)
	}
	// The handler verifies certificates, so the self-signed test server
	// must surface a handshake error.
	if got, ok := body["tls_error"].(string); !ok || got == "" {
		t.Errorf(`body["tls_error"] = %v, want a non-empty error`, body["tls_error"])
	}
}

func TestHandler_TLSTest_Unconfigured(t *testing.T) {
	t.Parallel()

	h := ops.NewHandler(&db.HanaConfig{Port: 443}, time.Second)

	req := httptest.NewRequest(http.MethodGet, "/tls-test", http.NoBody)
	rec := httptest.NewRecorder()

	h.TLSTest(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusBadGateway {
		t.Fatalf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusBadGateway)
	}

	body := web.DecodeJSONResponse(t, res)
	if got := body["error"]; got != web.CodeConnection {
		t.Errorf(`body["error"] = %v, want: %q`, got, web.CodeConnection)
	}
}

func splitAddr(t *testing.T, addr string) (string, int) {
	t.Helper()

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		t.Fatalf("failed to split address %q: %v", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("failed to parse port %q: %v", portStr, err)
	}
	return host, port
}
