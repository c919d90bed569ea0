package product

import (
	"context"
	"errors"
)

type StubService struct {
	ListFunc              func(ctx context.Context) ([]Product, error)
	FindFunc              func(ctx context.Context, name string) (*Product, error)
	CreateFunc            func(ctx context.Context, params CreateParams) (int64, error)
	UpdateDescriptionFunc func(ctx context.Context, name, description string) (int64, error)
	DeleteFunc            func(ctx context.Context, name string) (int64, error)
}

var _ Service = (*StubService)(nil)

func (s *StubService) List(ctx context.Context) ([]Product, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx)
}

func (s *StubService) Find(ctx context.Context, name string) (*Product, error) {
	if s.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, name)
}

func (s *StubService) Create(ctx context.Context, params CreateParams) (int64, error) {
	if s.CreateFunc == nil {
		return 0, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, params)
}

func (s *StubService) UpdateDescription(ctx context.Context, name, description string) (int64, error) {
	if s.UpdateDescriptionFunc == nil {
		return 0, errors.New("UpdateDescription() not implemented by stub")
	}
	return s.UpdateDescriptionFunc(ctx, name, description)
}

func (s *StubService) Delete(ctx context.Context, name string) (int64, error) {
	if s.DeleteFunc == nil {
		return 0, errors.New("Delete() not implemented by stub")
	}
	return s.DeleteFunc(ctx, name)
}

type StubRepo struct {
	ListFunc              func(ctx context.Context) ([]Product, error)
	FindByNameFunc        func(ctx context.Context, name string) (*Product, error)
	MaxIDFunc             func(ctx context.Context) (int64, error)
	InsertFunc            func(ctx context.Context, p Product) error
	UpdateDescriptionFunc func(ctx context.Context, name, description string) (int64, error)
	DeleteByNameFunc      func(ctx context.Context, name string) (int64, error)
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) List(ctx context.Context) ([]Product, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx)
}

func (r *StubRepo) FindByName(ctx context.Context, name string) (*Product, error) {
	if r.FindByNameFunc == nil {
		return nil, errors.New("FindByName() not implemented by stub")
	}
	return r.FindByNameFunc(ctx, name)
}

func (r *StubRepo) MaxID(ctx context.Context) (int64, error) {
	if r.MaxIDFunc == nil {
		return 0, errors.New("MaxID() not implemented by stub")
	}
	return r.MaxIDFunc(ctx)
}

func (r *StubRepo) Insert(ctx context.Context, p Product) error {
	if r.InsertFunc == nil {
		return errors.New("Insert() not implemented by stub")
	}
	return r.InsertFunc(ctx, p)
}

func (r *StubRepo) UpdateDescription(ctx context.Context, name, description string) (int64, error) {
	if r.UpdateDescriptionFunc == nil {
		return 0, errors.New("UpdateDescription() not implemented by stub")
	}
	return r.UpdateDescriptionFunc(ctx, name, description)
}

func (r *StubRepo) DeleteByName(ctx context.Context, name string) (int64, error) {
	if r.DeleteByNameFunc == nil {
		return 0, errors.New("DeleteByName() not implemented by stub")
	}
	return r.DeleteByNameFunc(ctx, name)
}
