package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/categorias-api/internal/application/usecase"
	"github.com/jhoicas/categorias-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	ResourceUC *usecase.ResourceUseCase
	Verifier   credentialVerifier
	Validator  payloadValidator
	Policy     AuthPolicy
	Logger     *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	errs := errorWriter{policy: deps.Policy, log: log}
	pipeline := &writePipeline{verifier: deps.Verifier, validator: deps.Validator, policy: deps.Policy}

	// Categories: POST valida en el orden del pipeline; GET verifica el token primero.
	categoryHandler := NewCategoryHandler(deps.CategoryUC, pipeline, errs)
	app.Post("/categories", categoryHandler.Create)
	app.Get("/categories", AuthMiddleware(deps.Verifier, errs), categoryHandler.List)

	resourceHandler := NewResourceHandler(deps.ResourceUC, pipeline, errs)
	app.Post("/resources", resourceHandler.Create)
}
