package product

import (
	"database/sql"

	"github.com/smartretail/product-api/internal/platform/db"
)

type Module struct {
	repo    *SQLRepository
	svc     *service
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func (m *Module) Service() Service {
	return m.svc
}

func NewModule(conn *sql.DB, schema string, tx db.TxManager) *Module {
	repo := NewRepository(conn, schema)
	svc := NewService(repo, tx)
	handler := NewHandler(svc)
	return &Module{
		repo:    repo,
		svc:     svc,
		handler: handler,
	}
}
