package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/smartretail/product-api/internal/middleware"
	"github.com/smartretail/product-api/internal/pkg/web"
)

type createPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func TestDecodePayload(t *testing.T) {
	t.Parallel()

	const maxBody = 1 << 10

	tests := []struct {
		name           string
		body           string
		wantStatusCode int
		wantName       string
	}{
		{
			name:           "decodes a valid payload",
			body:           `{"name":"grinder","description":"burr"}`,
			wantStatusCode: http.StatusOK,
			wantName:       "grinder",
		},
		{
			name:           "rejects malformed json",
			body:           `{"name":`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "rejects unknown fields",
			body:           `{"name":"grinder","vector":[1,2]}`,
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "rejects trailing data",
			body:           `{"name":"grinder"}{"name":"again"}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "rejects oversized payloads",
			body:           `{"name":"` + strings.Repeat("x", maxBody) + `"}`,
			wantStatusCode: http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				params, err := web.ParamsFromContext[createPayload](r.Context())
				if err != nil {
					t.Errorf("params missing from context: %v", err)
				}
				if params.Name != tt.wantName {
					t.Errorf("params.Name = %q, want: %q", params.Name, tt.wantName)
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/product", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			middleware.DecodePayload[createPayload](maxBody)(next).ServeHTTP(rec, req)

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.wantStatusCode {
				t.Errorf("res.StatusCode = %d, want: %d", res.StatusCode, tt.wantStatusCode)
			}
		})
	}
}
