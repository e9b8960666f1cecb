package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Periodicidades válidas para una métrica de cumplimiento.
const (
	PeriodicidadDiario     = "Diario"
	PeriodicidadSemanal    = "Semanal"
	PeriodicidadMensual    = "Mensual"
	PeriodicidadTrimestral = "Trimestral"
	PeriodicidadAnual      = "Anual"
)

// MetricaCumplimiento métrica con meta y valor real para un período.
// GuardarecursoID vacío = métrica institucional, no ligada a un guardarecurso.
type MetricaCumplimiento struct {
	ID              string
	Nombre          string
	Meta            decimal.Decimal
	Actual          decimal.Decimal
	Unidad          string // km recorridos, patrullajes, reportes, hectáreas
	Periodicidad    string // Diario, Semanal, Mensual, Trimestral, Anual
	GuardarecursoID string // opcional: restringe el alcance de la métrica
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
