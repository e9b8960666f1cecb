// Package permisos resuelve qué puede hacer cada rol sobre cada módulo de la
// aplicación y filtra el árbol de navegación según esa matriz.
//
// La resolución es total y falla cerrada: cualquier combinación rol/módulo no
// contemplada resuelve a todas las capacidades en false en lugar de error. La
// matriz vive en un mapa con entrada explícita por rol; el catch-all es el
// valor cero de Capacidades.
package permisos

// Identificadores de módulo de la aplicación.
const (
	ModuloDashboard      = "dashboard"
	ModuloGuardarecursos = "guardarecursos"
	ModuloAreas          = "areas"
	ModuloActividades    = "actividades"
	ModuloEvidencias     = "evidencias"
	ModuloCumplimiento   = "cumplimiento"
	ModuloReportes       = "reportes"
	ModuloUsuarios       = "usuarios"
	ModuloPerfil         = "perfil"
)

// Modulos todos los módulos en el orden de la aplicación.
var Modulos = []string{
	ModuloDashboard,
	ModuloGuardarecursos,
	ModuloAreas,
	ModuloActividades,
	ModuloEvidencias,
	ModuloCumplimiento,
	ModuloReportes,
	ModuloUsuarios,
	ModuloPerfil,
}

// Capacidades conjunto de capacidades de un rol sobre un módulo.
// El valor cero niega todo.
type Capacidades struct {
	Ver      bool `json:"canView"`
	Crear    bool `json:"canCreate"`
	Editar   bool `json:"canEdit"`
	Eliminar bool `json:"canDelete"`
}

// abreviaturas para la matriz
var (
	todo           = Capacidades{Ver: true, Crear: true, Editar: true, Eliminar: true}
	verCrearEditar = Capacidades{Ver: true, Crear: true, Editar: true}
	verCrear       = Capacidades{Ver: true, Crear: true}
	verEditar      = Capacidades{Ver: true, Editar: true}
	soloVer        = Capacidades{Ver: true}
)

// matriz rol × módulo. Los roles y módulos ausentes niegan por defecto.
var matriz = map[string]map[string]Capacidades{
	"Administrador": {
		ModuloDashboard:      soloVer,
		ModuloGuardarecursos: todo,
		ModuloAreas:          todo,
		ModuloActividades:    todo,
		ModuloEvidencias:     todo,
		ModuloCumplimiento:   todo,
		ModuloReportes:       soloVer,
		ModuloUsuarios:       todo,
		ModuloPerfil:         verEditar,
	},
	"Coordinador": {
		ModuloDashboard:      soloVer,
		ModuloGuardarecursos: verCrearEditar,
		ModuloAreas:          soloVer,
		ModuloActividades:    todo,
		ModuloEvidencias:     verCrearEditar,
		ModuloCumplimiento:   verCrearEditar,
		ModuloReportes:       soloVer,
		ModuloPerfil:         verEditar,
	},
	"Guardarecurso": {
		ModuloDashboard:    soloVer,
		ModuloAreas:        soloVer,
		ModuloActividades:  verEditar,
		ModuloEvidencias:   verCrear,
		ModuloCumplimiento: soloVer,
		ModuloPerfil:       verEditar,
	},
}

// Resolver devuelve las capacidades del rol sobre el módulo. Nunca falla:
// combinaciones desconocidas devuelven el conjunto vacío (negar por defecto).
func Resolver(rol, modulo string) Capacidades {
	porModulo, ok := matriz[rol]
	if !ok {
		return Capacidades{}
	}
	return porModulo[modulo]
}

// Puede indica si el rol tiene la acción ("ver", "crear", "editar",
// "eliminar") sobre el módulo. Acciones desconocidas niegan.
func Puede(rol, modulo, accion string) bool {
	c := Resolver(rol, modulo)
	switch accion {
	case "ver":
		return c.Ver
	case "crear":
		return c.Crear
	case "editar":
		return c.Editar
	case "eliminar":
		return c.Eliminar
	default:
		return false
	}
}
