package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/categorias-api/internal/domain/entity"
	"github.com/jhoicas/categorias-api/internal/domain/repository"
)

type fakeCategoryRepo struct {
	mu     sync.Mutex
	nextID int64
	items  []*entity.Category
	err    error
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.nextID++
	c.ID = r.nextID
	c.CreatedAt = time.Now()
	cp := *c
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeCategoryRepo) GetByIDAndCompany(_ context.Context, id, companyID int64) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.items {
		if c.ID == id && c.CompanyID == companyID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) ListByCompany(_ context.Context, companyID int64) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Category
	for _, c := range r.items {
		if c.CompanyID == companyID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeResourceRepo struct {
	nextID int64
	items  []*entity.Resource
}

func (r *fakeResourceRepo) Create(_ context.Context, res *entity.Resource) error {
	r.nextID++
	res.ID = r.nextID
	cp := *res
	r.items = append(r.items, &cp)
	return nil
}

// fakeTxRunner ejecuta fn directamente sobre los repos en memoria.
type fakeTxRunner struct {
	categories *fakeCategoryRepo
	resources  *fakeResourceRepo
}

func (r *fakeTxRunner) RunResources(_ context.Context, fn func(repository.CategoryRepository, repository.ResourceRepository) error) error {
	return fn(r.categories, r.resources)
}
