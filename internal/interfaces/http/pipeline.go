package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/categorias-api/internal/application/auth"
	"github.com/jhoicas/categorias-api/internal/domain"
)

// credentialVerifier lo implementa *auth.CredentialVerifier.
type credentialVerifier interface {
	Verify(token string) (auth.Principal, error)
}

// payloadValidator lo implementa *validation.Validator.
type payloadValidator interface {
	Struct(s any) error
}

// writePipeline ejecuta, en orden, los pasos previos a la persistencia de un endpoint de escritura:
// token presente -> cuerpo válido -> credencial verificada (o credencial antes que cuerpo, según AuthPolicy).
// El primer fallo corta la petición; nunca se llega al repositorio.
type writePipeline struct {
	verifier  credentialVerifier
	validator payloadValidator
	policy    AuthPolicy
}

// authorize parsea el cuerpo en in y devuelve el Principal del token, que también queda en c.Locals.
func (p *writePipeline) authorize(c *fiber.Ctx, in any) (auth.Principal, error) {
	principal, err := p.check(c, in)
	if err != nil {
		return auth.Principal{}, err
	}
	c.Locals(LocalPrincipal, principal)
	return principal, nil
}

func (p *writePipeline) check(c *fiber.Ctx, in any) (auth.Principal, error) {
	token, ok := ExtractBearerToken(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return auth.Principal{}, domain.ErrMissingCredential
	}
	if p.policy.VerifyBeforeBody {
		principal, err := p.verifier.Verify(token)
		if err != nil {
			return auth.Principal{}, err
		}
		if err := p.bind(c, in); err != nil {
			return auth.Principal{}, err
		}
		return principal, nil
	}
	if err := p.bind(c, in); err != nil {
		return auth.Principal{}, err
	}
	return p.verifier.Verify(token)
}

func (p *writePipeline) bind(c *fiber.Ctx, in any) error {
	if err := c.BodyParser(in); err != nil {
		return domain.NewValidationError("body", "cuerpo JSON inválido")
	}
	return p.validator.Struct(in)
}
