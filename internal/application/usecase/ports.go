package usecase

import (
	"context"

	"github.com/jhoicas/categorias-api/internal/domain/repository"
)

// ResourceTxRunner ejecuta fn dentro de una transacción con repositorios atados a ella.
// Si fn devuelve error se hace rollback.
type ResourceTxRunner interface {
	RunResources(ctx context.Context, fn func(
		categories repository.CategoryRepository,
		resources repository.ResourceRepository,
	) error) error
}
