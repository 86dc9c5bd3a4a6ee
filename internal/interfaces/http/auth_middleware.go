package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/categorias-api/internal/application/auth"
	"github.com/jhoicas/categorias-api/internal/domain"
)

// LocalPrincipal clave de c.Locals con el auth.Principal verificado.
const LocalPrincipal = "principal"

// AuthMiddleware valida el Bearer Token antes de cualquier otra cosa y deja el Principal en c.Locals.
// Se usa en las rutas de lectura; las de escritura usan writePipeline para respetar el orden configurado.
func AuthMiddleware(verifier credentialVerifier, errs errorWriter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := ExtractBearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return errs.write(c, domain.ErrMissingCredential)
		}
		principal, err := verifier.Verify(token)
		if err != nil {
			return errs.write(c, err)
		}
		c.Locals(LocalPrincipal, principal)
		return c.Next()
	}
}

// subject devuelve el sub del Principal en c.Locals; vacío si no hay.
func subject(c *fiber.Ctx) string {
	p, _ := c.Locals(LocalPrincipal).(auth.Principal)
	return p.Subject
}

// GetCompanyID devuelve el CompanyID del contexto (después del middleware de auth); 0 si no hay.
func GetCompanyID(c *fiber.Ctx) int64 {
	p, ok := c.Locals(LocalPrincipal).(auth.Principal)
	if !ok {
		return 0
	}
	return p.CompanyID
}
