package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/categorias-api/internal/application/dto"
	"github.com/jhoicas/categorias-api/internal/application/usecase"
)

// ResourceHandler recibe el formulario "novo recurso" del cliente web.
type ResourceHandler struct {
	uc       *usecase.ResourceUseCase
	pipeline *writePipeline
	errs     errorWriter
}

// NewResourceHandler construye el handler.
func NewResourceHandler(uc *usecase.ResourceUseCase, pipeline *writePipeline, errs errorWriter) *ResourceHandler {
	return &ResourceHandler{uc: uc, pipeline: pipeline, errs: errs}
}

// Create godoc
// @Summary      Crear recurso
// @Tags         resources
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateResourceRequest  true  "Datos del recurso"
// @Success      201   {object}  dto.ResourceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /resources [post]
func (h *ResourceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateResourceRequest
	principal, err := h.pipeline.authorize(c, &in)
	if err != nil {
		return h.errs.write(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), principal.CompanyID, in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
