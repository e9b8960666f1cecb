package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conap-gt/guardarecursos-api/internal/application/dto"
	"github.com/conap-gt/guardarecursos-api/internal/application/usecase"
	"github.com/conap-gt/guardarecursos-api/internal/domain"
	"github.com/conap-gt/guardarecursos-api/internal/domain/entity"
	"github.com/conap-gt/guardarecursos-api/internal/infrastructure/memoria"
)

func newEvidenciaUC(t *testing.T) (*usecase.EvidenciaUseCase, *memoria.Repos) {
	t.Helper()
	mem := memoria.NewRepos()
	require.NoError(t, mem.SeedDemo())
	uc := usecase.NewEvidenciaUseCase(mem.Evidencias, mem.Guardarecursos, mem.Actividades, mem.Areas)
	return uc, mem
}

func usuarioSeed(t *testing.T, mem *memoria.Repos, id string) *entity.User {
	t.Helper()
	u, err := mem.Users.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, u)
	return u
}

// El alcance por rol va antes del filtro de texto: un guardarecurso no puede
// buscar fuera de sus propios registros aunque el término coincida con ajenos.
func TestEvidenciaFiltrar_GuardarecursoSoloVeLoSuyo(t *testing.T) {
	uc, mem := newEvidenciaUC(t)
	jperez := usuarioSeed(t, mem, "usr-003") // gr-001

	out, err := uc.Filtrar("", jperez)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "evi-001", out[0].ID)

	// "quetzal" coincide con evi-003 (gr-002), pero no es suya.
	out, err = uc.Filtrar("quetzal", jperez)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestEvidenciaFiltrar_CoordinadorVeTodo(t *testing.T) {
	uc, mem := newEvidenciaUC(t)
	coordinador := usuarioSeed(t, mem, "usr-002")

	out, err := uc.Filtrar("", coordinador)
	require.NoError(t, err)
	assert.Len(t, out, 3)

	out, err = uc.Filtrar("fauna", coordinador)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

// Un guardarecurso siempre crea a su propio nombre: el GuardarecursoID del
// cuerpo se ignora.
func TestEvidenciaCreate_GuardarecursoFirmaPropia(t *testing.T) {
	uc, mem := newEvidenciaUC(t)
	jperez := usuarioSeed(t, mem, "usr-003")

	out, err := uc.Create(dto.CreateEvidenciaRequest{
		Titulo:          "Sendero dañado",
		Clasificacion:   "infraestructura",
		GuardarecursoID: "gr-002", // intento de firmar por otro
	}, jperez)
	require.NoError(t, err)
	assert.Equal(t, "gr-001", out.GuardarecursoID)
}

func TestEvidenciaCreate_CoordinadorAsignaLibre(t *testing.T) {
	uc, mem := newEvidenciaUC(t)
	coordinador := usuarioSeed(t, mem, "usr-002")

	out, err := uc.Create(dto.CreateEvidenciaRequest{
		Titulo:          "Brecha limpia",
		Clasificacion:   "infraestructura",
		GuardarecursoID: "gr-002",
	}, coordinador)
	require.NoError(t, err)
	assert.Equal(t, "gr-002", out.GuardarecursoID)
}

func TestResolverRelacionados_CadenaCompleta(t *testing.T) {
	uc, _ := newEvidenciaUC(t)

	out, err := uc.ResolverRelacionados("evi-001")
	require.NoError(t, err)
	require.NotNil(t, out.Guardarecurso)
	assert.Equal(t, "gr-001", out.Guardarecurso.ID)
	require.NotNil(t, out.Actividad)
	assert.Equal(t, "act-003", out.Actividad.ID)
	require.NotNil(t, out.Area, "el área se resuelve a través de la actividad")
	assert.Equal(t, "area-001", out.Area.ID)
}

// evi-003 apunta a una actividad inexistente: la referencia rota produce
// campos ausentes, nunca un error.
func TestResolverRelacionados_ReferenciaRotaTolerada(t *testing.T) {
	uc, _ := newEvidenciaUC(t)

	out, err := uc.ResolverRelacionados("evi-003")
	require.NoError(t, err)
	require.NotNil(t, out.Guardarecurso)
	assert.Equal(t, "gr-002", out.Guardarecurso.ID)
	assert.Nil(t, out.Actividad)
	assert.Nil(t, out.Area, "sin actividad no hay área que resolver")
}

func TestResolverRelacionados_EvidenciaInexistente(t *testing.T) {
	uc, _ := newEvidenciaUC(t)

	_, err := uc.ResolverRelacionados("evi-999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
