package auth

import (
	"fmt"

	"github.com/jhoicas/categorias-api/internal/domain"
	"github.com/jhoicas/categorias-api/pkg/jwt"
)

// Principal identidad verificada de quien hace la petición.
type Principal struct {
	CompanyID int64
	Subject   string
}

// JWTConfig parámetros de verificación de tokens.
type JWTConfig struct {
	Secret string
	Issuer string // vacío = no se exige iss
}

// CredentialVerifier valida tokens emitidos por el proceso de autenticación externo.
type CredentialVerifier struct {
	cfg JWTConfig
}

// NewCredentialVerifier construye el verificador.
func NewCredentialVerifier(cfg JWTConfig) *CredentialVerifier {
	return &CredentialVerifier{cfg: cfg}
}

// Verify comprueba firma, expiración y claims. Cualquier fallo envuelve domain.ErrInvalidCredential.
func (v *CredentialVerifier) Verify(token string) (Principal, error) {
	claims, err := jwt.Parse(v.cfg.Secret, token, jwt.ParseOptions{Issuer: v.cfg.Issuer})
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", domain.ErrInvalidCredential, err)
	}
	return Principal{CompanyID: *claims.CompanyID, Subject: claims.Subject}, nil
}
