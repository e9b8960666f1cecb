package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/conap-gt/guardarecursos-api/internal/application/dto"
	"github.com/conap-gt/guardarecursos-api/internal/application/usecase"
	"github.com/conap-gt/guardarecursos-api/internal/domain"
)

// EvidenciaHandler maneja las rutas de evidencia fotográfica.
type EvidenciaHandler struct {
	uc *usecase.EvidenciaUseCase
}

// NewEvidenciaHandler construye el handler de evidencias.
func NewEvidenciaHandler(uc *usecase.EvidenciaUseCase) *EvidenciaHandler {
	return &EvidenciaHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar evidencias visibles para la sesión
// @Tags         evidencias
// @Produce      json
// @Security     BearerAuth
// @Param        busqueda  query  string  false  "subcadena sobre título, descripción o clasificación"
// @Success      200  {array}  dto.EvidenciaResponse
// @Router       /api/evidencias [get]
func (h *EvidenciaHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Filtrar(c.Query("busqueda"), GetUsuario(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener una evidencia por ID
// @Tags         evidencias
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la evidencia"
// @Success      200  {object}  dto.EvidenciaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/evidencias/{id} [get]
func (h *EvidenciaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la evidencia no existe"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar evidencia fotográfica
// @Tags         evidencias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateEvidenciaRequest  true  "datos de la evidencia"
// @Success      201   {object}  dto.EvidenciaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/evidencias [post]
func (h *EvidenciaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEvidenciaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Titulo == "" || in.Clasificacion == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "titulo y clasificacion son requeridos"})
	}
	out, err := h.uc.Create(in, GetUsuario(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Relacionados godoc
// @Summary      Resolver guardarecurso, actividad y área de una evidencia
// @Tags         evidencias
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la evidencia"
// @Success      200  {object}  dto.RelacionadosResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/evidencias/{id}/relacionados [get]
func (h *EvidenciaHandler) Relacionados(c *fiber.Ctx) error {
	out, err := h.uc.ResolverRelacionados(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la evidencia no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
