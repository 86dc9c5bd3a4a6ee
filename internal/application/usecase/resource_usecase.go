package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jhoicas/categorias-api/internal/application/dto"
	"github.com/jhoicas/categorias-api/internal/domain"
	"github.com/jhoicas/categorias-api/internal/domain/entity"
	"github.com/jhoicas/categorias-api/internal/domain/repository"
)

// ResourceUseCase alta de recursos desde el formulario web.
type ResourceUseCase struct {
	tx ResourceTxRunner
}

// NewResourceUseCase construye el caso de uso.
func NewResourceUseCase(tx ResourceTxRunner) *ResourceUseCase {
	return &ResourceUseCase{tx: tx}
}

// Create persiste un recurso para companyID. La categoría referenciada debe ser de la misma empresa;
// si no lo es devuelve domain.ErrNotFound. Lectura de la categoría e inserción van en la misma transacción.
func (uc *ResourceUseCase) Create(ctx context.Context, companyID int64, in dto.CreateResourceRequest) (*dto.ResourceResponse, error) {
	categoryID, err := strconv.ParseInt(in.Category, 10, 64)
	if err != nil || categoryID <= 0 {
		return nil, domain.NewValidationError("category", "category debe ser un número entero")
	}
	resource := &entity.Resource{
		CompanyID:   companyID,
		CategoryID:  categoryID,
		Title:       in.Name,
		Description: in.Description,
	}
	err = uc.tx.RunResources(ctx, func(categories repository.CategoryRepository, resources repository.ResourceRepository) error {
		category, err := categories.GetByIDAndCompany(ctx, categoryID, companyID)
		if err != nil {
			return err
		}
		if category == nil {
			return fmt.Errorf("categoría %d: %w", categoryID, domain.ErrNotFound)
		}
		return resources.Create(ctx, resource)
	})
	if err != nil {
		return nil, err
	}
	return &dto.ResourceResponse{
		ID:          resource.ID,
		Title:       resource.Title,
		Description: resource.Description,
		CategoryID:  resource.CategoryID,
	}, nil
}
