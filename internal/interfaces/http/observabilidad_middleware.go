package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/conap-gt/guardarecursos-api/pkg/logger"
	"github.com/conap-gt/guardarecursos-api/pkg/metrics"
)

// ObservabilidadMiddleware registra cada petición en el log estructurado y
// alimenta el contador Prometheus por ruta y código. La etiqueta de ruta usa
// el patrón registrado (/api/areas/:id), no el path concreto, para acotar la
// cardinalidad.
func ObservabilidadMiddleware(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		err := c.Next()

		codigo := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				codigo = fe.Code
			}
		}
		ruta := c.Route().Path
		metrics.HTTPRequests.WithLabelValues(ruta, strconv.Itoa(codigo)).Inc()

		log.Info().
			Str("metodo", c.Method()).
			Str("ruta", ruta).
			Int("codigo", codigo).
			Dur("duracion", time.Since(inicio)).
			Msg("request")
		return err
	}
}
