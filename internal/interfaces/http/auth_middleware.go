package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/conap-gt/guardarecursos-api/internal/application/auth"
	"github.com/conap-gt/guardarecursos-api/internal/application/dto"
	"github.com/conap-gt/guardarecursos-api/internal/domain/entity"
)

// LocalUsuario key del usuario de sesión en c.Locals.
const LocalUsuario = "usuario"

// AuthMiddleware valida el Bearer token y resuelve el usuario de sesión.
//
// La resolución vuelve a consultar la cuenta y exige estado Activo, así que
// una suspensión o desactivación posterior a la emisión del token corta la
// sesión aquí, sin lista de revocación.
func AuthMiddleware(authUC *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		user, err := authUC.ResolveSessionUser(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_INVALID", Message: "la sesión ya no es válida"})
		}
		c.Locals(LocalUsuario, user)
		return c.Next()
	}
}

// GetUsuario devuelve el usuario de sesión del contexto (después del middleware de auth).
func GetUsuario(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUsuario)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
