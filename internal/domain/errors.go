package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
// ErrInvalidInput, ErrDuplicate y ErrInternal forman la taxonomía que la capa HTTP
// traduce a 400, 409 y 500.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInternal     = errors.New("error interno")
)

// ValidationError describe una entrada rechazada antes de tocar la base de datos.
// Fields lista los campos faltantes o mal formados en el orden en que se detectaron.
type ValidationError struct {
	Fields []string
	Reason string
}

// NewValidationError construye el error con una razón legible y los campos afectados.
func NewValidationError(reason string, fields ...string) *ValidationError {
	return &ValidationError{Fields: fields, Reason: reason}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Reason
	}
	return e.Reason + ": " + strings.Join(e.Fields, ", ")
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
