package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-inventario/pkg/logger"
)

// requestObserver lo implementa *metrics.Recorder.
type requestObserver interface {
	ObserveRequest(method, route string, status int)
}

// RequestLogger registra método, ruta, status y latencia de cada petición.
// observer puede ser nil.
func RequestLogger(log *logger.Logger, observer requestObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// deja que el ErrorHandler escriba la respuesta antes de leer el status
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http")

		if observer != nil {
			observer.ObserveRequest(c.Method(), c.Route().Path, status)
		}
		return nil
	}
}
