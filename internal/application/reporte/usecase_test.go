package reporte_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conap-gt/guardarecursos-api/internal/application/dto"
	"github.com/conap-gt/guardarecursos-api/internal/application/reporte"
	"github.com/conap-gt/guardarecursos-api/internal/domain"
	"github.com/conap-gt/guardarecursos-api/internal/domain/entity"
	"github.com/conap-gt/guardarecursos-api/internal/infrastructure/memoria"
)

// generadorStub captura lo que recibe y devuelve bytes fijos, para probar el
// armado del reporte sin renderizar PDF.
type generadorStub struct {
	periodo   string
	secciones []reporte.Seccion
}

func (g *generadorStub) GenerarReporteCumplimiento(_ context.Context, periodo string, _ time.Time, secciones []reporte.Seccion) ([]byte, error) {
	g.periodo = periodo
	g.secciones = secciones
	return []byte("%PDF-stub"), nil
}

func newReporteUC(t *testing.T) (*reporte.UseCase, *generadorStub) {
	t.Helper()
	mem := memoria.NewRepos()
	require.NoError(t, mem.SeedDemo())
	gen := &generadorStub{}
	return reporte.NewUseCase(mem.Guardarecursos, mem.Areas, mem.Metricas, gen), gen
}

func TestGenerar_SinSeleccionEsInvalido(t *testing.T) {
	uc, _ := newReporteUC(t)

	_, _, err := uc.Generar(context.Background(), dto.ReporteCumplimientoRequest{
		Periodo: entity.PeriodicidadMensual,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGenerar_GuardarecursoInexistente(t *testing.T) {
	uc, _ := newReporteUC(t)

	_, _, err := uc.Generar(context.Background(), dto.ReporteCumplimientoRequest{
		Periodo:          entity.PeriodicidadMensual,
		GuardarecursoIDs: []string{"gr-001", "gr-999"},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerar_SeccionesEnOrdenDeSeleccion(t *testing.T) {
	uc, gen := newReporteUC(t)

	pdf, filename, err := uc.Generar(context.Background(), dto.ReporteCumplimientoRequest{
		Periodo:          entity.PeriodicidadMensual,
		GuardarecursoIDs: []string{"gr-003", "gr-001"},
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), pdf)
	assert.Regexp(t, regexp.MustCompile(`^Reporte_Cumplimiento_Mensual_\d{8}_\d{6}\.pdf$`), filename)

	assert.Equal(t, entity.PeriodicidadMensual, gen.periodo)
	require.Len(t, gen.secciones, 2)

	// gr-003 va primero porque se pidió primero, aunque no tenga métricas.
	sinMetricas := gen.secciones[0]
	assert.Equal(t, "GR-0003", sinMetricas.Codigo)
	assert.Equal(t, "Sin área asignada", sinMetricas.AreaNombre)
	assert.Empty(t, sinMetricas.Metricas)
	assert.Zero(t, sinMetricas.Promedio)

	// gr-001 en Mensual: 96/120 = 80 y 8/8 = 100, promedio 90.
	conMetricas := gen.secciones[1]
	assert.Equal(t, "GR-0001", conMetricas.Codigo)
	assert.Equal(t, "Parque Nacional Tikal", conMetricas.AreaNombre)
	require.Len(t, conMetricas.Metricas, 2)
	assert.InDelta(t, 90.0, conMetricas.Promedio, 1e-9)
}

// El período filtra estrictamente: las métricas trimestrales no se cuelan en
// un reporte mensual.
func TestGenerar_PeriodoFiltraEstricto(t *testing.T) {
	uc, gen := newReporteUC(t)

	_, _, err := uc.Generar(context.Background(), dto.ReporteCumplimientoRequest{
		Periodo:          entity.PeriodicidadTrimestral,
		GuardarecursoIDs: []string{"gr-002"},
	})
	require.NoError(t, err)
	require.Len(t, gen.secciones, 1)
	require.Len(t, gen.secciones[0].Metricas, 1)
	assert.Equal(t, "Monitoreos de especies", gen.secciones[0].Metricas[0].Nombre)
	assert.InDelta(t, 100.0, gen.secciones[0].Metricas[0].Porcentaje, 1e-9)
}
