package product

import (
	"context"

	"github.com/smartretail/product-api/internal/platform/db"
)

// Repository is the storage interface for products.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	FindByName(ctx context.Context, name string) (*Product, error)
	MaxID(ctx context.Context) (int64, error)
	Insert(ctx context.Context, p Product) error
	UpdateDescription(ctx context.Context, name, description string) (int64, error)
	DeleteByName(ctx context.Context, name string) (int64, error)
}

type CreateParams struct {
	Name        string
	Description string
}

type service struct {
	repo Repository
	tx   db.TxManager
}

var _ Service = (*service)(nil)

func NewService(repo Repository, tx db.TxManager) *service {
	return &service{
		repo: repo,
		tx:   tx,
	}
}

func (s *service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *service) Find(ctx context.Context, name string) (*Product, error) {
	return s.repo.FindByName(ctx, name)
}

// Create assigns MAX(PRODUCT_ID)+1 and inserts the product. Both steps run
// in one transaction so concurrent creates cannot claim the same id.
func (s *service) Create(ctx context.Context, params CreateParams) (int64, error) {
	var id int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		maxID, err := s.repo.MaxID(txCtx)
		if err != nil {
			return err
		}

		id = maxID + 1
		return s.repo.Insert(txCtx, Product{
			ID:          id,
			Name:        params.Name,
			Description: params.Description,
		})
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (s *service) UpdateDescription(ctx context.Context, name, description string) (int64, error) {
	return s.repo.UpdateDescription(ctx, name, description)
}

func (s *service) Delete(ctx context.Context, name string) (int64, error) {
	return s.repo.DeleteByName(ctx, name)
}
