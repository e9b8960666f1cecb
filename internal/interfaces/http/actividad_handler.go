package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/conap-gt/guardarecursos-api/internal/application/dto"
	"github.com/conap-gt/guardarecursos-api/internal/application/usecase"
	"github.com/conap-gt/guardarecursos-api/internal/domain"
)

// ActividadHandler maneja las rutas de actividades de campo.
type ActividadHandler struct {
	uc *usecase.ActividadUseCase
}

// NewActividadHandler construye el handler de actividades.
func NewActividadHandler(uc *usecase.ActividadUseCase) *ActividadHandler {
	return &ActividadHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar actividades visibles para la sesión
// @Tags         actividades
// @Produce      json
// @Security     BearerAuth
// @Param        estado  query  string  false  "Programada, En Progreso o Completada"
// @Success      200  {array}  dto.ActividadResponse
// @Router       /api/actividades [get]
func (h *ActividadHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.Query("estado"), GetUsuario(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener una actividad por ID
// @Tags         actividades
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la actividad"
// @Success      200  {object}  dto.ActividadResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/actividades/{id} [get]
func (h *ActividadHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la actividad no existe"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Programar una actividad
// @Tags         actividades
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateActividadRequest  true  "datos de la actividad"
// @Success      201   {object}  dto.ActividadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/actividades [post]
func (h *ActividadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateActividadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Titulo == "" || in.GuardarecursoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "titulo y guardarecurso_id son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CambiarEstado godoc
// @Summary      Cambiar el estado de una actividad
// @Tags         actividades
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID de la actividad"
// @Param        body  body  dto.CambiarEstadoActividadRequest  true  "estado destino"
// @Success      200   {object}  dto.ActividadResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/actividades/{id}/estado [put]
func (h *ActividadHandler) CambiarEstado(c *fiber.Ctx) error {
	var in dto.CambiarEstadoActividadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CambiarEstado(c.Params("id"), in.Estado, GetUsuario(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la actividad no existe"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado inválido"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puede modificar sus propias actividades"})
		case errors.Is(err, domain.ErrSinCambio):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SIN_CAMBIO", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}
