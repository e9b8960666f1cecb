package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conap-gt/guardarecursos-api/internal/application/usecase"
	"github.com/conap-gt/guardarecursos-api/internal/domain"
	"github.com/conap-gt/guardarecursos-api/internal/domain/entity"
	"github.com/conap-gt/guardarecursos-api/internal/infrastructure/memoria"
)

func newAreaUC(t *testing.T) (*usecase.AreaUseCase, *memoria.Repos) {
	t.Helper()
	mem := memoria.NewRepos()
	require.NoError(t, mem.SeedDemo())
	return usecase.NewAreaUseCase(mem.Areas, mem.Guardarecursos), mem
}

// Un área desactivada no aparece en el listado aunque la búsqueda la nombre
// explícitamente: la exclusión es absoluta, no un valor por defecto.
func TestAreaFiltrar_DesactivadaNuncaAparece(t *testing.T) {
	uc, _ := newAreaUC(t)

	todas, err := uc.Filtrar("", "")
	require.NoError(t, err)
	for _, a := range todas {
		assert.NotEqual(t, "area-004", a.ID)
	}
	assert.Len(t, todas, 3)

	porNombre, err := uc.Filtrar("San Gil", "")
	require.NoError(t, err)
	assert.Empty(t, porNombre, "buscarla por nombre tampoco la revela")

	porDepto, err := uc.Filtrar("", "Izabal")
	require.NoError(t, err)
	assert.Empty(t, porDepto)
}

func TestAreaFiltrar_BusquedaInsensibleATildes(t *testing.T) {
	uc, _ := newAreaUC(t)

	out, err := uc.Filtrar("peten", "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "area-001", out[0].ID)

	out, err = uc.Filtrar("LACHUA", "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "area-003", out[0].ID)
}

func TestAreaFiltrar_DepartamentoTodosNoRestringe(t *testing.T) {
	uc, _ := newAreaUC(t)

	out, err := uc.Filtrar("", usecase.DepartamentoTodos)
	require.NoError(t, err)
	assert.Len(t, out, 3)
}

func TestValidarDesactivacion_BloqueaConAsignados(t *testing.T) {
	uc, _ := newAreaUC(t)

	// gr-001 tiene asignada area-001
	val, err := uc.ValidarDesactivacion("area-001")
	require.NoError(t, err)
	assert.False(t, val.IsValid)
	assert.Equal(t, 1, val.AssignedCount)
	assert.Contains(t, val.Message, "1 guardarecurso(s) asignado(s)")

	// area-003 no tiene asignaciones
	val, err = uc.ValidarDesactivacion("area-003")
	require.NoError(t, err)
	assert.True(t, val.IsValid)
	assert.Zero(t, val.AssignedCount)
}

// La guardia se libera al reasignar: el conteo es sobre el estado presente.
func TestValidarDesactivacion_ReasignarLibera(t *testing.T) {
	uc, mem := newAreaUC(t)

	g, err := mem.Guardarecursos.GetByID("gr-001")
	require.NoError(t, err)
	g.AreaAsignadaID = "area-003"
	require.NoError(t, mem.Guardarecursos.Update(g))

	val, err := uc.ValidarDesactivacion("area-001")
	require.NoError(t, err)
	assert.True(t, val.IsValid)
}

func TestCambiarEstado_MismoEstadoEsErrSinCambio(t *testing.T) {
	uc, _ := newAreaUC(t)

	_, err := uc.CambiarEstado("area-001", entity.EstadoActivo)
	assert.ErrorIs(t, err, domain.ErrSinCambio)

	_, err = uc.CambiarEstado("area-004", entity.EstadoDesactivado)
	assert.ErrorIs(t, err, domain.ErrSinCambio)
}

func TestCambiarEstado_DesactivarConAsignadosFalla(t *testing.T) {
	uc, _ := newAreaUC(t)

	_, err := uc.CambiarEstado("area-001", entity.EstadoDesactivado)
	assert.ErrorIs(t, err, domain.ErrAreaConAsignaciones)
}

func TestCambiarEstado_DesactivarSinAsignadosYReactivar(t *testing.T) {
	uc, _ := newAreaUC(t)

	out, err := uc.CambiarEstado("area-003", entity.EstadoDesactivado)
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoDesactivado, out.Estado)

	// Reactivar no tiene guardia simétrica.
	out, err = uc.CambiarEstado("area-004", entity.EstadoActivo)
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoActivo, out.Estado)
}

func TestCambiarEstado_EstadoInvalido(t *testing.T) {
	uc, _ := newAreaUC(t)

	_, err := uc.CambiarEstado("area-001", "Suspendido")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "las áreas no tienen estado Suspendido")
}

func TestMapa_ProyectaSoloActivas(t *testing.T) {
	uc, _ := newAreaUC(t)

	puntos, err := uc.Mapa()
	require.NoError(t, err)
	require.Len(t, puntos, 3)

	// Tikal: x=(lng+92)*180, y=(19-lat)*80
	var tikal *struct{ x, y float64 }
	for _, p := range puntos {
		if p.AreaID == "area-001" {
			tikal = &struct{ x, y float64 }{p.X, p.Y}
		}
		assert.NotEqual(t, "area-004", p.AreaID)
	}
	require.NotNil(t, tikal)
	assert.InDelta(t, (-89.6237+92)*180, tikal.x, 1e-9)
	assert.InDelta(t, (19-17.2221)*80, tikal.y, 1e-9)
}
