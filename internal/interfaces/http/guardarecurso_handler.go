package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/conap-gt/guardarecursos-api/internal/application/dto"
	"github.com/conap-gt/guardarecursos-api/internal/application/usecase"
	"github.com/conap-gt/guardarecursos-api/internal/domain"
)

// GuardarecursoHandler maneja las rutas de perfiles de guardarecursos.
type GuardarecursoHandler struct {
	uc *usecase.GuardarecursoUseCase
}

// NewGuardarecursoHandler construye el handler de guardarecursos.
func NewGuardarecursoHandler(uc *usecase.GuardarecursoUseCase) *GuardarecursoHandler {
	return &GuardarecursoHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar guardarecursos
// @Tags         guardarecursos
// @Produce      json
// @Security     BearerAuth
// @Param        busqueda  query  string  false  "subcadena sobre nombre, apellido o código"
// @Success      200  {array}  dto.GuardarecursoResponse
// @Router       /api/guardarecursos [get]
func (h *GuardarecursoHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Filtrar(c.Query("busqueda"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener un guardarecurso por ID
// @Tags         guardarecursos
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del guardarecurso"
// @Success      200  {object}  dto.GuardarecursoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/guardarecursos/{id} [get]
func (h *GuardarecursoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el guardarecurso no existe"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar un guardarecurso
// @Tags         guardarecursos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateGuardarecursoRequest  true  "datos del guardarecurso"
// @Success      201   {object}  dto.GuardarecursoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/guardarecursos [post]
func (h *GuardarecursoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGuardarecursoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Codigo == "" || in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "codigo y nombre son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el código ya está registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar un guardarecurso
// @Tags         guardarecursos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID del guardarecurso"
// @Param        body  body  dto.UpdateGuardarecursoRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.GuardarecursoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/guardarecursos/{id} [put]
func (h *GuardarecursoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateGuardarecursoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el guardarecurso no existe"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado inválido"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}
