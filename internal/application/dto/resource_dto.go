package dto

// CreateResourceRequest entrada del formulario de nuevo recurso.
// Category es el id (en texto) de una categoría de la misma empresa.
type CreateResourceRequest struct {
	Name        string `json:"name" validate:"required,nonul,min=1,max=50"`
	Category    string `json:"category" validate:"required,number"`
	Description string `json:"description" validate:"nonul,max=100"`
}

// Normalize recorta espacios y normaliza a NFC antes de validar longitudes.
func (r *CreateResourceRequest) Normalize() {
	r.Name = normalizeText(r.Name)
	r.Category = normalizeText(r.Category)
	r.Description = normalizeText(r.Description)
}

// ResourceResponse salida de un recurso creado.
type ResourceResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CategoryID  int64  `json:"category_id"`
}
