package repository

import (
	"context"

	"github.com/jhoicas/categorias-api/internal/domain/entity"
)

// ResourceRepository define el puerto de persistencia para Resource (DIP).
type ResourceRepository interface {
	Create(ctx context.Context, resource *entity.Resource) error
}
