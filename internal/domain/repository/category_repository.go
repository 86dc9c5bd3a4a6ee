package repository

import (
	"context"

	"github.com/jhoicas/categorias-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	// Create inserta la categoría y completa ID y CreatedAt.
	Create(ctx context.Context, category *entity.Category) error
	// GetByIDAndCompany devuelve nil, nil si no existe para esa empresa.
	GetByIDAndCompany(ctx context.Context, id, companyID int64) (*entity.Category, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*entity.Category, error)
}
