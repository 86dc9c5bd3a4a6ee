package dto

// ErrorResponse cuerpo de error HTTP.
// Code se omite en el error de token ausente, que responde solo {"message": ...}.
type ErrorResponse struct {
	Code    string            `json:"code,omitempty"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}
