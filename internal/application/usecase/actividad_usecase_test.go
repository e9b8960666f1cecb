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

func newActividadUC(t *testing.T) (*usecase.ActividadUseCase, *memoria.Repos) {
	t.Helper()
	mem := memoria.NewRepos()
	require.NoError(t, mem.SeedDemo())
	return usecase.NewActividadUseCase(mem.Actividades), mem
}

func TestActividadListar_GuardarecursoSoloVeLasSuyas(t *testing.T) {
	uc, mem := newActividadUC(t)
	jperez := usuarioSeed(t, mem, "usr-003") // gr-001

	out, err := uc.Listar("", jperez)
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, a := range out {
		assert.Equal(t, "gr-001", a.GuardarecursoID)
	}

	out, err = uc.Listar(entity.ActividadCompletada, jperez)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "act-003", out[0].ID)
}

func TestActividadCambiarEstado_GuardarecursoSoloLasPropias(t *testing.T) {
	uc, mem := newActividadUC(t)
	jperez := usuarioSeed(t, mem, "usr-003")

	// act-002 pertenece a gr-002.
	_, err := uc.CambiarEstado("act-002", entity.ActividadCompletada, jperez)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.CambiarEstado("act-001", entity.ActividadEnProgreso, jperez)
	require.NoError(t, err)
	assert.Equal(t, entity.ActividadEnProgreso, out.Estado)
}

func TestActividadCambiarEstado_MismoEstadoEsErrSinCambio(t *testing.T) {
	uc, mem := newActividadUC(t)
	coordinador := usuarioSeed(t, mem, "usr-002")

	_, err := uc.CambiarEstado("act-001", entity.ActividadProgramada, coordinador)
	assert.ErrorIs(t, err, domain.ErrSinCambio)
}

func TestActividadCambiarEstado_EstadoInvalido(t *testing.T) {
	uc, mem := newActividadUC(t)
	coordinador := usuarioSeed(t, mem, "usr-002")

	_, err := uc.CambiarEstado("act-001", "Cancelada", coordinador)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
