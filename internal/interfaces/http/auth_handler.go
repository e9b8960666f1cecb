package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/conap-gt/guardarecursos-api/internal/application/auth"
	"github.com/conap-gt/guardarecursos-api/internal/application/dto"
	"github.com/conap-gt/guardarecursos-api/internal/domain/entity"
	"github.com/conap-gt/guardarecursos-api/internal/domain/permisos"
)

// AuthHandler maneja login, sesión y contraseñas.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, auth.ErrCuentaSuspendida) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACCOUNT_SUSPENDED", Message: err.Error()})
		}
		if errors.Is(err, auth.ErrCredencialesInvalidas) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Usuario de la sesión actual con sus permisos por módulo
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := GetUsuario(c)
	caps := make(map[string]permisos.Capacidades, len(permisos.Modulos))
	for _, m := range permisos.Modulos {
		caps[m] = permisos.Resolver(user.Rol, m)
	}
	return c.JSON(fiber.Map{
		"user":     toSessionUser(user),
		"permisos": caps,
	})
}

// Navegacion godoc
// @Summary      Árbol de navegación filtrado por el rol de la sesión
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  permisos.CategoriaNavegacion
// @Router       /api/auth/navegacion [get]
func (h *AuthHandler) Navegacion(c *fiber.Ctx) error {
	user := GetUsuario(c)
	return c.JSON(permisos.FiltrarNavegacion(user.Rol, permisos.NavegacionPorDefecto()))
}

// CambiarPassword godoc
// @Summary      Cambiar la contraseña propia
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CambiarPasswordRequest  true  "actual, nueva, confirmacion"
// @Success      200   {object}  dto.ResultadoValidacion
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/password [put]
func (h *AuthHandler) CambiarPassword(c *fiber.Ctx) error {
	var in dto.CambiarPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user := GetUsuario(c)
	if err := h.uc.ChangeOwnPassword(user.ID, in.Actual, in.Nueva, in.Confirmacion); err != nil {
		return respuestaErrorPassword(c, err)
	}
	return c.JSON(dto.ResultadoValidacion{IsValid: true})
}

// AdminCambiarPassword godoc
// @Summary      Cambiar la contraseña de otro usuario (solo administradores)
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID del usuario objetivo"
// @Param        body  body  dto.AdminPasswordRequest  true  "nueva, confirmacion"
// @Success      200   {object}  dto.ResultadoValidacion
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id}/password [put]
func (h *AuthHandler) AdminCambiarPassword(c *fiber.Ctx) error {
	var in dto.AdminPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user := GetUsuario(c)
	if err := h.uc.ChangeUserPasswordByAdmin(user.ID, c.Params("id"), in.Nueva, in.Confirmacion); err != nil {
		return respuestaErrorPassword(c, err)
	}
	return c.JSON(dto.ResultadoValidacion{IsValid: true})
}

// ListarUsuarios godoc
// @Summary      Listar cuentas del sistema
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/usuarios [get]
func (h *AuthHandler) ListarUsuarios(c *fiber.Ctx) error {
	users, err := h.uc.ListUsers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(users)
}

func toSessionUser(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		Nombre:          u.Nombre,
		Apellido:        u.Apellido,
		Rol:             u.Rol,
		Estado:          u.Estado,
		GuardarecursoID: u.GuardarecursoID,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// respuestaErrorPassword traduce los errores de cambio de contraseña a HTTP.
// Los mensajes de negocio llegan tal cual al cliente.
func respuestaErrorPassword(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrSoloAdministrador), errors.Is(err, auth.ErrObjetivoAdministrador):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, auth.ErrPasswordActualIncorrecta),
		errors.Is(err, auth.ErrPasswordMuyCorta),
		errors.Is(err, auth.ErrPasswordsNoCoinciden),
		errors.Is(err, auth.ErrPasswordSinCambio),
		errors.Is(err, auth.ErrCredencialesInvalidas):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
