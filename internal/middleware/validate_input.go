package middleware

import (
	"errors"
	"net/http"

	"github.com/smartretail/product-api/internal/pkg/message"
	"github.com/smartretail/product-api/internal/pkg/web"
	"github.com/smartretail/product-api/internal/platform/validation"
)

// ValidateInput validates the decoded payload of type T found in the
// request context.
func ValidateInput[T any](validator validation.Validator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			params, err := web.ParamsFromContext[T](r.Context())
			if err != nil {
				web.Fail(w, http.StatusBadRequest, err, web.CodeInvalidInput, message.InvalidInput, nil)
				return
			}

			if errs := validator.ValidateStruct(params); errs != nil {
				web.Fail(w, http.StatusBadRequest, errors.New("invalid input"), web.CodeInvalidInput, message.InvalidInput, errs)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
