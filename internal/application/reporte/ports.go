package reporte

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// FilaMetrica fila de la tabla de métricas de una sección del reporte.
type FilaMetrica struct {
	Nombre     string
	Meta       decimal.Decimal
	Actual     decimal.Decimal
	Unidad     string
	Porcentaje float64
	Nivel      string
}

// Seccion bloque del reporte para un guardarecurso: encabezado, promedio del
// período y tabla de métricas. Metricas puede quedar vacío; el generador debe
// renderizar igualmente el encabezado con una línea explícita de "sin
// métricas", nunca omitir la sección.
type Seccion struct {
	GuardarecursoNombre string
	Codigo              string
	AreaNombre          string
	Promedio            float64
	Metricas            []FilaMetrica
}

// PDFGenerator contrato del generador del documento paginado.
type PDFGenerator interface {
	GenerarReporteCumplimiento(ctx context.Context, periodo string, generadoEn time.Time, secciones []Seccion) ([]byte, error)
}
