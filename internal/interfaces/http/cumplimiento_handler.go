package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/conap-gt/guardarecursos-api/internal/application/dto"
	"github.com/conap-gt/guardarecursos-api/internal/application/usecase"
	"github.com/conap-gt/guardarecursos-api/internal/domain"
)

// CumplimientoHandler maneja métricas de cumplimiento y estadísticas del panel.
type CumplimientoHandler struct {
	uc *usecase.CumplimientoUseCase
}

// NewCumplimientoHandler construye el handler de cumplimiento.
func NewCumplimientoHandler(uc *usecase.CumplimientoUseCase) *CumplimientoHandler {
	return &CumplimientoHandler{uc: uc}
}

// Metricas godoc
// @Summary      Listar métricas visibles para la sesión
// @Tags         cumplimiento
// @Produce      json
// @Security     BearerAuth
// @Param        periodo        query  string  false  "Diario, Semanal, Mensual, Trimestral o Anual"
// @Param        guardarecurso  query  string  false  "ID de guardarecurso o 'todos'"
// @Success      200  {array}  dto.MetricaResponse
// @Router       /api/cumplimiento/metricas [get]
func (h *CumplimientoHandler) Metricas(c *fiber.Ctx) error {
	out, err := h.uc.FiltrarMetricas(c.Query("periodo"), c.Query("guardarecurso"), GetUsuario(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Estadisticas godoc
// @Summary      Agregado del panel de cumplimiento
// @Tags         cumplimiento
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.EstadisticasResponse
// @Router       /api/cumplimiento/estadisticas [get]
func (h *CumplimientoHandler) Estadisticas(c *fiber.Ctx) error {
	out, err := h.uc.Estadisticas(GetUsuario(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreateMetrica godoc
// @Summary      Crear una métrica de cumplimiento
// @Tags         cumplimiento
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateMetricaRequest  true  "datos de la métrica"
// @Success      201   {object}  dto.MetricaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cumplimiento/metricas [post]
func (h *CumplimientoHandler) CreateMetrica(c *fiber.Ctx) error {
	var in dto.CreateMetricaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.Periodicidad == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre y periodicidad son requeridos"})
	}
	out, err := h.uc.CreateMetrica(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateMetrica godoc
// @Summary      Actualizar meta y valor real de una métrica
// @Tags         cumplimiento
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID de la métrica"
// @Param        body  body  dto.UpdateMetricaRequest  true  "meta y actual"
// @Success      200   {object}  dto.MetricaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cumplimiento/metricas/{id} [put]
func (h *CumplimientoHandler) UpdateMetrica(c *fiber.Ctx) error {
	var in dto.UpdateMetricaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateMetrica(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la métrica no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
