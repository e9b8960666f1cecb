package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/conap-gt/guardarecursos-api/internal/application/dto"
	"github.com/conap-gt/guardarecursos-api/internal/application/reporte"
	"github.com/conap-gt/guardarecursos-api/internal/domain"
)

// ReporteHandler maneja la generación del reporte de cumplimiento en PDF.
type ReporteHandler struct {
	uc *reporte.UseCase
}

// NewReporteHandler construye el handler de reportes.
func NewReporteHandler(uc *reporte.UseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// Generar godoc
// @Summary      Generar el reporte de cumplimiento en PDF
// @Tags         reportes
// @Accept       json
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        body  body  dto.ReporteCumplimientoRequest  true  "guardarecurso_ids y periodo"
// @Success      200   {file}    file
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reportes/cumplimiento [post]
func (h *ReporteHandler) Generar(c *fiber.Ctx) error {
	var in dto.ReporteCumplimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pdfBytes, filename, err := h.uc.Generar(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "debe seleccionar al menos un guardarecurso"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}
