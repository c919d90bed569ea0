package app

import (
	"github.com/smartretail/product-api/internal/config"
	"github.com/smartretail/product-api/internal/middleware"
	"github.com/smartretail/product-api/internal/ops"
	"github.com/smartretail/product-api/internal/platform/db"
	"github.com/smartretail/product-api/internal/platform/router"
	"github.com/smartretail/product-api/internal/platform/validation"
	"github.com/smartretail/product-api/internal/product"
)

func mountOpsRoutes(r router.Router, hanaCfg *db.HanaConfig, probeOpts *config.ProbeOptions) {
	handler := ops.NewHandler(hanaCfg, probeOpts.DialTimeout.Duration)
	r.Get("/health", handler.Health)
	r.Get("/tls-test", handler.TLSTest)
}

func mountProductRoutes(r router.Router, handler *product.Handler, validator validation.Validator, maxBodyBytes int64) {
	r.Get("/products", handler.List)
	r.Get("/product/{name}", handler.Find)
	r.Post("/product", handler.Create,
		middleware.CheckContentType,
		middleware.DecodePayload[product.CreateRequest](maxBodyBytes),
		middleware.ValidateInput[product.CreateRequest](validator))
	r.Put("/product/{name}", handler.Update,
		middleware.CheckContentType,
		middleware.DecodePayload[product.UpdateRequest](maxBodyBytes),
		middleware.ValidateInput[product.UpdateRequest](validator))
	r.Delete("/product/{name}", handler.Delete)
}
