package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-http-utils/headers"
	"github.com/smartretail/product-api/internal/pkg/message"
	"github.com/smartretail/product-api/internal/pkg/web"
)

// CheckContentType rejects request bodies that are not JSON. A charset
// suffix is allowed.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get(headers.ContentType)

		if !strings.HasPrefix(contentType, web.MimeJSON) {
			err := fmt.Errorf("invalid content-type: %s", contentType)
			web.Fail(w, http.StatusNotAcceptable, err, web.CodeNotAcceptable, message.InvalidInput, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
