package dto

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CreateCategoryRequest entrada para crear una categoría.
// No lleva companyId: el tenant sale del token.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,nonul,min=1,max=50"`
}

// Normalize recorta espacios y normaliza a NFC antes de validar longitudes.
func (r *CreateCategoryRequest) Normalize() {
	r.Name = normalizeText(r.Name)
}

// CategoryResponse salida de una categoría (lo que consume el select del formulario).
type CategoryResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func normalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
