package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/categorias-api/internal/application/dto"
	"github.com/jhoicas/categorias-api/internal/domain"
	"github.com/jhoicas/categorias-api/pkg/logger"
)

// MissingTokenMessage es el mensaje que espera el cliente web cuando no hay token.
const MissingTokenMessage = "Token inválido!"

// AuthPolicy decisiones configurables del pipeline de autenticación.
type AuthPolicy struct {
	// InvalidCredentialStatus 401 o 403; cualquier otro valor se trata como 401.
	InvalidCredentialStatus int
	// VerifyBeforeBody verifica el token antes de parsear y validar el cuerpo.
	VerifyBeforeBody bool
}

func (p AuthPolicy) invalidCredentialStatus() int {
	if p.InvalidCredentialStatus == fiber.StatusForbidden {
		return fiber.StatusForbidden
	}
	return fiber.StatusUnauthorized
}

// errorWriter traduce errores de dominio a respuestas HTTP. Es el único punto de mapeo.
type errorWriter struct {
	policy AuthPolicy
	log    *logger.Logger
}

func (w errorWriter) write(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrMissingCredential):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: MissingTokenMessage})
	case errors.Is(err, domain.ErrInvalidCredential):
		w.log.Debug().Err(err).Str("request_id", requestID(c)).Msg("credencial rechazada")
		return c.Status(w.policy.invalidCredentialStatus()).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "payload inválido", Errors: verr.Fields})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrStoreUnavailable):
		w.log.Error().Err(err).Str("request_id", requestID(c)).Str("subject", subject(c)).Int64("company_id", GetCompanyID(c)).Msg("almacén no disponible")
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORE_UNAVAILABLE", Message: "servicio no disponible, intente más tarde"})
	default:
		w.log.Error().Err(err).Str("request_id", requestID(c)).Str("subject", subject(c)).Int64("company_id", GetCompanyID(c)).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}
