package http

import "strings"

// ExtractBearerToken devuelve el token de un header "Authorization: Bearer <token>".
// El esquema no distingue mayúsculas. ok es false si el header falta, el esquema no es Bearer o el token está vacío.
func ExtractBearerToken(header string) (token string, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
