package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/categorias-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "categorias-api-test"
)

func sign(t *testing.T, method gojwt.SigningMethod, claims gojwt.Claims, key interface{}) string {
	t.Helper()
	tok, err := gojwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return tok
}

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 7, "user-1", testIssuer, 60)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, tok, pkgjwt.ParseOptions{Issuer: testIssuer})
	require.NoError(t, err)
	require.NotNil(t, claims.CompanyID)
	assert.Equal(t, int64(7), *claims.CompanyID)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", 7, "", "", 60)
	assert.ErrorIs(t, err, pkgjwt.ErrEmptySecret)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 7, "", testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok, pkgjwt.ParseOptions{})
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 7, "", testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok, pkgjwt.ParseOptions{})
	assert.ErrorIs(t, err, gojwt.ErrTokenSignatureInvalid)
}

func TestParse_IssuerDistinto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 7, "", "otro-emisor", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok, pkgjwt.ParseOptions{Issuer: testIssuer})
	assert.ErrorIs(t, err, gojwt.ErrTokenInvalidIssuer)
}

func TestParse_Malformado(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "token.invalido.aqui", pkgjwt.ParseOptions{})
	assert.ErrorIs(t, err, gojwt.ErrTokenMalformed)
}

func TestParse_ClaimsInvalidos(t *testing.T) {
	exp := gojwt.NewNumericDate(time.Now().Add(time.Hour))

	tests := []struct {
		name   string
		claims gojwt.MapClaims
	}{
		{name: "sin companyId", claims: gojwt.MapClaims{"exp": exp}},
		{name: "companyId cero", claims: gojwt.MapClaims{"exp": exp, "companyId": 0}},
		{name: "companyId negativo", claims: gojwt.MapClaims{"exp": exp, "companyId": -3}},
		{name: "companyId texto", claims: gojwt.MapClaims{"exp": exp, "companyId": "7"}},
		{name: "companyId decimal", claims: gojwt.MapClaims{"exp": exp, "companyId": 7.5}},
		{name: "sin exp", claims: gojwt.MapClaims{"companyId": 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := sign(t, gojwt.SigningMethodHS256, tt.claims, []byte(testSecret))
			_, err := pkgjwt.Parse(testSecret, tok, pkgjwt.ParseOptions{})
			assert.Error(t, err)
		})
	}
}

func TestParse_AceptaFamiliaHMAC(t *testing.T) {
	claims := gojwt.MapClaims{"exp": gojwt.NewNumericDate(time.Now().Add(time.Hour)), "companyId": 7}
	for _, method := range []gojwt.SigningMethod{gojwt.SigningMethodHS256, gojwt.SigningMethodHS384, gojwt.SigningMethodHS512} {
		t.Run(method.Alg(), func(t *testing.T) {
			tok := sign(t, method, claims, []byte(testSecret))
			got, err := pkgjwt.Parse(testSecret, tok, pkgjwt.ParseOptions{})
			require.NoError(t, err)
			assert.Equal(t, int64(7), *got.CompanyID)
		})
	}
}

func TestParse_RechazaAlgoritmoNone(t *testing.T) {
	claims := gojwt.MapClaims{"exp": gojwt.NewNumericDate(time.Now().Add(time.Hour)), "companyId": 7}
	tok := sign(t, gojwt.SigningMethodNone, claims, gojwt.UnsafeAllowNoneSignatureType)

	_, err := pkgjwt.Parse(testSecret, tok, pkgjwt.ParseOptions{})
	assert.ErrorIs(t, err, gojwt.ErrTokenSignatureInvalid)
}

func TestParse_IatEnElFuturo(t *testing.T) {
	now := time.Now()
	claims := gojwt.MapClaims{
		"iat":       gojwt.NewNumericDate(now.Add(5 * time.Second)),
		"exp":       gojwt.NewNumericDate(now.Add(time.Hour)),
		"companyId": 7,
	}
	tok := sign(t, gojwt.SigningMethodHS256, claims, []byte(testSecret))

	got, err := pkgjwt.Parse(testSecret, tok, pkgjwt.ParseOptions{})
	require.NoError(t, err, "un reloj del emisor adelantado no invalida el token")
	assert.Equal(t, int64(7), *got.CompanyID)
}
