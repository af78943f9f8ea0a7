package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse lista ordenada de mensajes de validación para el
// usuario. Las reglas de negocio adicionales se concatenan a Errors.
type ValidationErrorResponse struct {
	Code   string   `json:"code"`
	Errors []string `json:"errors"`
}
