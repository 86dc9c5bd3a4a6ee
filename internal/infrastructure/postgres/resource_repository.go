package postgres

import (
	"context"

	"github.com/jhoicas/categorias-api/internal/domain/entity"
	"github.com/jhoicas/categorias-api/internal/domain/repository"
)

var _ repository.ResourceRepository = (*ResourceRepo)(nil)

// ResourceRepo implementación del puerto ResourceRepository sobre PostgreSQL.
type ResourceRepo struct {
	q Querier
}

// NewResourceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewResourceRepository(q Querier) *ResourceRepo {
	return &ResourceRepo{q: q}
}

// Create inserta el recurso; id y created_at los asigna la base.
func (r *ResourceRepo) Create(ctx context.Context, resource *entity.Resource) error {
	query := `
		INSERT INTO resources (title, description, category_id, company_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		resource.Title, resource.Description, resource.CategoryID, resource.CompanyID,
	).Scan(&resource.ID, &resource.CreatedAt)
	if err != nil {
		return wrapErr("insert resource", err)
	}
	return nil
}
