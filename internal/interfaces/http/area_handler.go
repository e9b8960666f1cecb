package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/conap-gt/guardarecursos-api/internal/application/dto"
	"github.com/conap-gt/guardarecursos-api/internal/application/usecase"
	"github.com/conap-gt/guardarecursos-api/internal/domain"
)

// AreaHandler maneja las rutas de áreas protegidas.
type AreaHandler struct {
	uc *usecase.AreaUseCase
}

// NewAreaHandler construye el handler de áreas.
func NewAreaHandler(uc *usecase.AreaUseCase) *AreaHandler {
	return &AreaHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar áreas activas
// @Tags         areas
// @Produce      json
// @Security     BearerAuth
// @Param        busqueda      query  string  false  "subcadena sobre nombre, departamento o descripción"
// @Param        departamento  query  string  false  "departamento exacto o 'todos'"
// @Success      200  {array}  dto.AreaResponse
// @Router       /api/areas [get]
func (h *AreaHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Filtrar(c.Query("busqueda"), c.Query("departamento"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Mapa godoc
// @Summary      Puntos del mapa esquemático (solo áreas activas)
// @Tags         areas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.PuntoMapaResponse
// @Router       /api/areas/mapa [get]
func (h *AreaHandler) Mapa(c *fiber.Ctx) error {
	out, err := h.uc.Mapa()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener un área por ID
// @Tags         areas
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del área"
// @Success      200  {object}  dto.AreaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/areas/{id} [get]
func (h *AreaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el área no existe"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear un área protegida
// @Tags         areas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateAreaRequest  true  "datos del área"
// @Success      201   {object}  dto.AreaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/areas [post]
func (h *AreaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAreaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.Departamento == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre y departamento son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar un área protegida
// @Tags         areas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID del área"
// @Param        body  body  dto.UpdateAreaRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.AreaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/areas/{id} [put]
func (h *AreaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAreaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el área no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ValidarDesactivacion godoc
// @Summary      Verificar si el área puede desactivarse (pre-check)
// @Tags         areas
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del área"
// @Success      200  {object}  dto.ValidacionDesactivacionResponse
// @Router       /api/areas/{id}/desactivacion [get]
func (h *AreaHandler) ValidarDesactivacion(c *fiber.Ctx) error {
	out, err := h.uc.ValidarDesactivacion(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CambiarEstado godoc
// @Summary      Activar o desactivar un área
// @Tags         areas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID del área"
// @Param        body  body  dto.CambiarEstadoAreaRequest  true  "Activo o Desactivado"
// @Success      200   {object}  dto.AreaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/areas/{id}/estado [put]
func (h *AreaHandler) CambiarEstado(c *fiber.Ctx) error {
	var in dto.CambiarEstadoAreaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CambiarEstado(c.Params("id"), in.Estado)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el área no existe"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado inválido: debe ser Activo o Desactivado"})
		case errors.Is(err, domain.ErrSinCambio):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SIN_CAMBIO", Message: err.Error()})
		case errors.Is(err, domain.ErrAreaConAsignaciones):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "AREA_CON_ASIGNACIONES", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}
