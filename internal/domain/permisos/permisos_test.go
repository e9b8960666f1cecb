package permisos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conap-gt/guardarecursos-api/internal/domain/permisos"
)

// La resolución debe ser total: cualquier combinación rol/módulo devuelve las
// cuatro banderas, y las desconocidas niegan por defecto.
func TestResolver_NiegaPorDefecto(t *testing.T) {
	casos := []struct {
		rol, modulo string
	}{
		{"", ""},
		{"RolInexistente", permisos.ModuloAreas},
		{"Administrador", "modulo-inexistente"},
		{"Guardarecurso", permisos.ModuloUsuarios},
		{"guardarecurso", permisos.ModuloAreas}, // el rol distingue mayúsculas
	}
	for _, c := range casos {
		caps := permisos.Resolver(c.rol, c.modulo)
		assert.Equal(t, permisos.Capacidades{}, caps,
			"rol=%q modulo=%q debe negar todo", c.rol, c.modulo)
	}
}

func TestResolver_MatrizPorRol(t *testing.T) {
	admin := permisos.Resolver("Administrador", permisos.ModuloUsuarios)
	assert.True(t, admin.Ver && admin.Crear && admin.Editar && admin.Eliminar)

	coord := permisos.Resolver("Coordinador", permisos.ModuloGuardarecursos)
	assert.True(t, coord.Ver && coord.Crear && coord.Editar)
	assert.False(t, coord.Eliminar, "Coordinador no elimina guardarecursos")

	gr := permisos.Resolver("Guardarecurso", permisos.ModuloEvidencias)
	assert.True(t, gr.Ver && gr.Crear)
	assert.False(t, gr.Editar || gr.Eliminar)

	assert.False(t, permisos.Resolver("Guardarecurso", permisos.ModuloReportes).Ver,
		"Guardarecurso no accede a reportes")
}

func TestPuede_AccionDesconocidaNiega(t *testing.T) {
	assert.False(t, permisos.Puede("Administrador", permisos.ModuloAreas, "administrar"))
	assert.True(t, permisos.Puede("Administrador", permisos.ModuloAreas, "eliminar"))
}

// El filtrado debe preservar el orden original y descartar categorías vacías.
func TestFiltrarNavegacion_PreservaOrdenYDescartaVacias(t *testing.T) {
	arbol := permisos.NavegacionPorDefecto()

	admin := permisos.FiltrarNavegacion("Administrador", arbol)
	require.Len(t, admin, len(arbol), "el administrador ve todas las categorías")
	for i, cat := range admin {
		assert.Equal(t, arbol[i].Titulo, cat.Titulo, "el orden de categorías se preserva")
	}

	gr := permisos.FiltrarNavegacion("Guardarecurso", arbol)
	for _, cat := range gr {
		for _, item := range cat.Items {
			assert.True(t, permisos.Resolver("Guardarecurso", item.Modulo).Ver,
				"item %s no debería ser visible", item.Modulo)
		}
		assert.NotEmpty(t, cat.Items, "no deben quedar categorías vacías")
	}
	// Reportes y usuarios no son visibles para el guardarecurso.
	for _, cat := range gr {
		for _, item := range cat.Items {
			assert.NotEqual(t, permisos.ModuloReportes, item.Modulo)
			assert.NotEqual(t, permisos.ModuloUsuarios, item.Modulo)
		}
	}
}

func TestFiltrarNavegacion_RolDesconocidoQuedaSinMenu(t *testing.T) {
	resultado := permisos.FiltrarNavegacion("RolInexistente", permisos.NavegacionPorDefecto())
	assert.Empty(t, resultado)
}

func TestFiltrarNavegacion_NoMutaElArbolDeEntrada(t *testing.T) {
	arbol := permisos.NavegacionPorDefecto()
	itemsAntes := len(arbol[1].Items)
	_ = permisos.FiltrarNavegacion("Guardarecurso", arbol)
	assert.Len(t, arbol[1].Items, itemsAntes)
}
