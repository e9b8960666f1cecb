package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/conap-gt/guardarecursos-api/internal/application/dto"
	"github.com/conap-gt/guardarecursos-api/internal/domain/permisos"
)

// RequirePermiso autoriza la ruta contra la matriz de permisos por rol.
// Corre después de AuthMiddleware. La denegación es silenciosa: mismo 403
// genérico para rol desconocido, módulo desconocido o capacidad ausente.
func RequirePermiso(modulo, accion string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetUsuario(c)
		if user == nil || !permisos.Puede(user.Rol, modulo, accion) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no tiene permisos para esta operación"})
		}
		return c.Next()
	}
}
