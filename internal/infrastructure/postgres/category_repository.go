package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/categorias-api/internal/domain/entity"
	"github.com/jhoicas/categorias-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create inserta la categoría; id y created_at los asigna la base.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (title, company_id)
		VALUES ($1, $2)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query, category.Title, category.CompanyID).Scan(&category.ID, &category.CreatedAt)
	if err != nil {
		return wrapErr("insert category", err)
	}
	return nil
}

// GetByIDAndCompany obtiene una categoría de la empresa; nil si no existe.
func (r *CategoryRepo) GetByIDAndCompany(ctx context.Context, id, companyID int64) (*entity.Category, error) {
	query := `
		SELECT id, company_id, title, created_at
		FROM categories WHERE id = $1 AND company_id = $2`
	var c entity.Category
	err := r.q.QueryRow(ctx, query, id, companyID).Scan(&c.ID, &c.CompanyID, &c.Title, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get category", err)
	}
	return &c, nil
}

// ListByCompany lista todas las categorías de la empresa por título.
func (r *CategoryRepo) ListByCompany(ctx context.Context, companyID int64) ([]*entity.Category, error) {
	query := `
		SELECT id, company_id, title, created_at
		FROM categories WHERE company_id = $1 ORDER BY title, id`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, wrapErr("list categories", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Title, &c.CreatedAt); err != nil {
			return nil, wrapErr("scan category", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("list categories", err)
	}
	return list, nil
}
