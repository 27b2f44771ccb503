package dto

// ErrorResponse cuerpo de error HTTP. Nunca incluye el detalle interno del error.
type ErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}
