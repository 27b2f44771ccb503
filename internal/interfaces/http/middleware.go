package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/inventario-alertas/pkg/logger"
)

// HeaderRequestID cabecera de correlación de peticiones.
const HeaderRequestID = "X-Request-ID"

// LocalsRequestID clave en c.Locals del request id.
const LocalsRequestID = "request_id"

// RequestID reutiliza la cabecera X-Request-ID entrante o genera un UUID v4.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     HeaderRequestID,
		Generator:  uuid.NewString,
		ContextKey: LocalsRequestID,
	})
}

// GetRequestID devuelve el request id de la petición (vacío si no pasó por RequestID).
func GetRequestID(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalsRequestID).(string)
	return v
}

// RequestLogger registra método, ruta, status, latencia y request id de cada petición.
// 5xx se registran como error, 4xx como warn y el resto como info. Además deja en
// c.UserContext() un logger con request_id para los casos de uso (logger.Ctx).
func RequestLogger(base *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		log := base.WithRequestID(GetRequestID(c))
		c.SetUserContext(log.WithContext(c.UserContext()))

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error().Err(err)
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición HTTP")
		return err
	}
}
