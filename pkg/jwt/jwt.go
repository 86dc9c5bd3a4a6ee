package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errores de verificación de claims propios de la aplicación.
var (
	ErrEmptySecret      = errors.New("jwt: secret vacío")
	ErrMissingCompanyID = errors.New("jwt: claim companyId ausente")
	ErrInvalidCompanyID = errors.New("jwt: claim companyId debe ser un entero positivo")
)

// hmacMethods son los algoritmos aceptados con secreto compartido.
var hmacMethods = []string{
	jwt.SigningMethodHS256.Alg(),
	jwt.SigningMethodHS384.Alg(),
	jwt.SigningMethodHS512.Alg(),
}

// Claims incluye los claims estándar JWT más el tenant emisor de la petición.
// CompanyID es puntero para distinguir "ausente" de cero.
type Claims struct {
	jwt.RegisteredClaims
	CompanyID *int64 `json:"companyId"`
}

// Validate se invoca desde el parser de golang-jwt después de validar exp/iss.
func (c Claims) Validate() error {
	if c.CompanyID == nil {
		return ErrMissingCompanyID
	}
	if *c.CompanyID <= 0 {
		return ErrInvalidCompanyID
	}
	return nil
}

// Generate genera un token HS256 firmado con el companyId indicado.
// expMinutes negativo produce un token ya expirado (útil en tests).
func Generate(secret string, companyID int64, subject, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		CompanyID: &companyID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseOptions restricciones adicionales aplicadas al verificar.
type ParseOptions struct {
	Issuer string // si no está vacío, el claim iss debe coincidir
}

// Parse valida firma, expiración (obligatoria) y el claim companyId.
// Retorna error si el token es inválido, expirado, malformado o tiene firma incorrecta.
func Parse(secret, tokenString string, opts ParseOptions) (*Claims, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	// iat no se valida: el emisor externo puede tener el reloj adelantado.
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods(hmacMethods),
		jwt.WithExpirationRequired(),
	}
	if opts.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(opts.Issuer))
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, parserOpts...)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("claims inválidos")
	}
	return claims, nil
}
