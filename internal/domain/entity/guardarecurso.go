package entity

import "time"

// Guardarecurso perfil de un guardarecurso de campo.
//
// AreaAsignadaID es una referencia débil al área protegida asignada: es solo
// una clave de búsqueda, sin propiedad. La desactivación de un área se bloquea
// mientras exista alguna referencia (ver AreaUseCase.ValidarDesactivacion),
// pero no hay guardia simétrica al reactivar ni al asignar.
type Guardarecurso struct {
	ID             string
	Codigo         string // código de empleado CONAP, ej. GR-0012
	Nombre         string
	Apellido       string
	DPI            string
	Telefono       string
	Email          string
	AreaAsignadaID string // vacío = sin área asignada
	Estado         string // Activo, Suspendido, Desactivado
	FechaIngreso   time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NombreCompleto nombre y apellido concatenados para presentación.
func (g *Guardarecurso) NombreCompleto() string {
	if g.Apellido == "" {
		return g.Nombre
	}
	return g.Nombre + " " + g.Apellido
}
