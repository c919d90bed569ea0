package product

import (
	"context"
	"errors"
	"net/http"

	"github.com/ferdiebergado/gopherkit/http/response"
	"github.com/smartretail/product-api/internal/pkg/message"
	"github.com/smartretail/product-api/internal/pkg/web"
	"github.com/smartretail/product-api/internal/platform/db"
)

// Service is the business interface consumed by the handler.
type Service interface {
	List(ctx context.Context) ([]Product, error)
	Find(ctx context.Context, name string) (*Product, error)
	Create(ctx context.Context, params CreateParams) (int64, error)
	UpdateDescription(ctx context.Context, name, description string) (int64, error)
	Delete(ctx context.Context, name string) (int64, error)
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type CreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type UpdateRequest struct {
	Description *string `json:"description" validate:"required"`
}

type productData struct {
	ProductID   int64  `json:"product_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ListResponse struct {
	Products []productData `json:"products"`
}

type CreateResponse struct {
	Status    string `json:"status"`
	ProductID int64  `json:"product_id"`
}

type MutationResponse struct {
	Status       string `json:"status"`
	RowsAffected int64  `json:"rows_affected"`
}

const statusOK = "ok"

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, newListResponse(products))
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	p, err := h.svc.Find(r.Context(), name)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, transformProduct(*p))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	params, err := web.ParamsFromContext[CreateRequest](r.Context())
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, web.CodeInvalidInput, message.InvalidInput, nil)
		return
	}

	id, err := h.svc.Create(r.Context(), CreateParams{
		Name:        params.Name,
		Description: params.Description,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, &CreateResponse{
		Status:    statusOK,
		ProductID: id,
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	params, err := web.ParamsFromContext[UpdateRequest](r.Context())
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, web.CodeInvalidInput, message.InvalidInput, nil)
		return
	}

	rows, err := h.svc.UpdateDescription(r.Context(), name, *params.Description)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, &MutationResponse{
		Status:       statusOK,
		RowsAffected: rows,
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	rows, err := h.svc.Delete(r.Context(), name)
	if err != nil {
		respondError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, &MutationResponse{
		Status:       statusOK,
		RowsAffected: rows,
	})
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, db.ErrUnavailable):
		web.Fail(w, http.StatusBadGateway, err, web.CodeConnection, message.DBUnavailable, nil)
	case errors.Is(err, ErrNotFound):
		web.Fail(w, http.StatusNotFound, err, web.CodeNotFound, message.ProductNotFound, nil)
	default:
		web.Fail(w, http.StatusInternalServerError, err, web.CodeInternal, message.Internal, nil)
	}
}

func transformProduct(p Product) *productData {
	return &productData{
		ProductID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
	}
}

func newListResponse(products []Product) *ListResponse {
	data := make([]productData, 0, len(products))
	for _, p := range products {
		data = append(data, *transformProduct(p))
	}

	return &ListResponse{Products: data}
}
