package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-alertas/internal/application/dto"
	"github.com/jhoicas/inventario-alertas/internal/domain"
)

// Mensajes genéricos expuestos al cliente.
const (
	msgInvalidBody = "cuerpo inválido"
	msgDuplicate   = "ya existe un producto con ese SKU"
	msgNotFound    = "recurso no encontrado"
	msgInternal    = "error interno del servidor"
)

// respondError traduce la taxonomía de dominio a status HTTP:
// ValidationError → 400, ErrDuplicate → 409, ErrNotFound → 404, cualquier otro → 500.
// El detalle de los errores internos nunca llega al cliente.
func respondError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: verr.Reason, Fields: verr.Fields})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: domain.ErrInvalidInput.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: msgDuplicate})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: msgNotFound})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: msgInternal})
	}
}

// ErrorHandler manejador global de Fiber: errores no atendidos por los handlers
// (rutas inexistentes, panics recuperados) con el mismo cuerpo {error}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		msg := fe.Message
		if fe.Code >= fiber.StatusInternalServerError {
			msg = msgInternal
		}
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: msg})
	}
	return respondError(c, err)
}
