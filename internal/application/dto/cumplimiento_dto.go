package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMetricaRequest entrada para crear una métrica de cumplimiento.
type CreateMetricaRequest struct {
	Nombre          string          `json:"nombre" validate:"required"`
	Meta            decimal.Decimal `json:"meta" validate:"required"`
	Actual          decimal.Decimal `json:"actual"`
	Unidad          string          `json:"unidad" validate:"required"`
	Periodicidad    string          `json:"periodicidad" validate:"required,oneof=Diario Semanal Mensual Trimestral Anual"`
	GuardarecursoID string          `json:"guardarecurso_id"`
}

// UpdateMetricaRequest actualización de meta/valor real.
type UpdateMetricaRequest struct {
	Meta   decimal.Decimal `json:"meta"`
	Actual decimal.Decimal `json:"actual"`
}

// MetricaResponse salida de una métrica con su porcentaje y nivel derivados.
type MetricaResponse struct {
	ID              string          `json:"id"`
	Nombre          string          `json:"nombre"`
	Meta            decimal.Decimal `json:"meta"`
	Actual          decimal.Decimal `json:"actual"`
	Unidad          string          `json:"unidad"`
	Periodicidad    string          `json:"periodicidad"`
	GuardarecursoID string          `json:"guardarecurso_id,omitempty"`
	Porcentaje      float64         `json:"porcentaje"`
	Nivel           string          `json:"nivel"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// EstadisticasResponse agregado del panel de cumplimiento. Los conteos se
// calculan sobre el subconjunto de actividades visible para el rol.
type EstadisticasResponse struct {
	Total                int     `json:"total"`
	Completadas          int     `json:"completadas"`
	EnProgreso           int     `json:"enProgreso"`
	Programadas          int     `json:"programadas"`
	PromedioCumplimiento float64 `json:"promedioCumplimiento"`
}
