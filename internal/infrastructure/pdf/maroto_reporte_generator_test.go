package pdf_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conap-gt/guardarecursos-api/internal/application/reporte"
	"github.com/conap-gt/guardarecursos-api/internal/infrastructure/pdf"
)

func seccionConMetricas(nombre, codigo string, filas int) reporte.Seccion {
	s := reporte.Seccion{
		GuardarecursoNombre: nombre,
		Codigo:              codigo,
		AreaNombre:          "Parque Nacional Tikal",
		Promedio:            82.5,
	}
	for i := 0; i < filas; i++ {
		s.Metricas = append(s.Metricas, reporte.FilaMetrica{
			Nombre:     fmt.Sprintf("Métrica %02d", i+1),
			Meta:       decimal.NewFromInt(100),
			Actual:     decimal.NewFromInt(int64(60 + i)),
			Unidad:     "km",
			Porcentaje: float64(60 + i),
			Nivel:      "bajo",
		})
	}
	return s
}

func TestGenerarReporteCumplimiento_ProduceUnPDF(t *testing.T) {
	gen := pdf.NewMarotoReporteGenerator()

	out, err := gen.GenerarReporteCumplimiento(context.Background(), "Mensual", time.Now(),
		[]reporte.Seccion{seccionConMetricas("Juan Pérez", "GR-0001", 2)})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

// Una sección sin métricas igual se renderiza, con su línea explícita en lugar
// de la tabla.
func TestGenerarReporteCumplimiento_SeccionVaciaSeRenderiza(t *testing.T) {
	gen := pdf.NewMarotoReporteGenerator()

	vacia := reporte.Seccion{GuardarecursoNombre: "Pedro Xol", Codigo: "GR-0003", AreaNombre: "Sin área asignada"}
	out, err := gen.GenerarReporteCumplimiento(context.Background(), "Mensual", time.Now(),
		[]reporte.Seccion{vacia})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

// Muchas secciones largas obligan a saltar de página; el documento completo
// sale más grande que el de una sola sección, nunca con error.
func TestGenerarReporteCumplimiento_Paginacion(t *testing.T) {
	gen := pdf.NewMarotoReporteGenerator()

	una, err := gen.GenerarReporteCumplimiento(context.Background(), "Mensual", time.Now(),
		[]reporte.Seccion{seccionConMetricas("Juan Pérez", "GR-0001", 3)})
	require.NoError(t, err)

	secciones := make([]reporte.Seccion, 0, 12)
	for i := 0; i < 12; i++ {
		secciones = append(secciones, seccionConMetricas(fmt.Sprintf("Guardarecurso %02d", i+1), fmt.Sprintf("GR-%04d", i+1), 15))
	}
	muchas, err := gen.GenerarReporteCumplimiento(context.Background(), "Mensual", time.Now(), secciones)
	require.NoError(t, err)
	assert.Greater(t, len(muchas), len(una))
}
