package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conap-gt/guardarecursos-api/internal/application/usecase"
	"github.com/conap-gt/guardarecursos-api/internal/domain/cumplimiento"
	"github.com/conap-gt/guardarecursos-api/internal/domain/entity"
	"github.com/conap-gt/guardarecursos-api/internal/infrastructure/memoria"
)

func newCumplimientoUC(t *testing.T) (*usecase.CumplimientoUseCase, *memoria.Repos) {
	t.Helper()
	mem := memoria.NewRepos()
	require.NoError(t, mem.SeedDemo())
	return usecase.NewCumplimientoUseCase(mem.Metricas, mem.Actividades), mem
}

// El alcance por rol gana sobre un filtro contradictorio: un guardarecurso que
// pide las métricas de otro recibe solo las suyas, sin error.
func TestFiltrarMetricas_AlcancePorRolGanaAlFiltro(t *testing.T) {
	uc, mem := newCumplimientoUC(t)
	jperez := usuarioSeed(t, mem, "usr-003") // gr-001

	out, err := uc.FiltrarMetricas("", "gr-002", jperez)
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, m := range out {
		assert.Equal(t, "gr-001", m.GuardarecursoID)
	}
}

func TestFiltrarMetricas_AdminFiltraPorPeriodoYGuardarecurso(t *testing.T) {
	uc, mem := newCumplimientoUC(t)
	admin := usuarioSeed(t, mem, "usr-001")

	// Mensual y "todos": met-001, met-002, met-003 y la institucional met-005.
	out, err := uc.FiltrarMetricas(entity.PeriodicidadMensual, usecase.FiltroGuardarecursoTodos, admin)
	require.NoError(t, err)
	assert.Len(t, out, 4)

	out, err = uc.FiltrarMetricas(entity.PeriodicidadMensual, "gr-002", admin)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "met-003", out[0].ID)
}

func TestFiltrarMetricas_DerivaPorcentajeYNivel(t *testing.T) {
	uc, mem := newCumplimientoUC(t)
	admin := usuarioSeed(t, mem, "usr-001")

	out, err := uc.FiltrarMetricas(entity.PeriodicidadTrimestral, usecase.FiltroGuardarecursoTodos, admin)
	require.NoError(t, err)
	require.Len(t, out, 1)

	// met-004: actual 6 sobre meta 4 se capea en 100.
	assert.Equal(t, "met-004", out[0].ID)
	assert.Equal(t, 100.0, out[0].Porcentaje)
	assert.Equal(t, cumplimiento.NivelAlto, out[0].Nivel)
}

func TestEstadisticas_AlcancePorRol(t *testing.T) {
	uc, mem := newCumplimientoUC(t)
	jperez := usuarioSeed(t, mem, "usr-003") // gr-001: act-001 y act-003

	stats, err := uc.Estadisticas(jperez)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Completadas)
	assert.Equal(t, 0, stats.EnProgreso)
	assert.Equal(t, 1, stats.Programadas)

	// met-001 (96/120 = 80%) y met-002 (8/8 = 100%): promedio simple 90.
	assert.InDelta(t, 90.0, stats.PromedioCumplimiento, 1e-9)
}

func TestEstadisticas_SinMetricasNoDivideEntreCero(t *testing.T) {
	mem := memoria.NewRepos() // sin sembrar
	uc := usecase.NewCumplimientoUseCase(mem.Metricas, mem.Actividades)

	stats, err := uc.Estadisticas(nil)
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.PromedioCumplimiento)
}
