package entity

import "time"

// Estados de una actividad de campo.
const (
	ActividadProgramada = "Programada"
	ActividadEnProgreso = "En Progreso"
	ActividadCompletada = "Completada"
)

// Actividad actividad de campo programada o ejecutada por un guardarecurso.
type Actividad struct {
	ID              string
	Titulo          string
	Tipo            string // patrullaje, monitoreo, mantenimiento, educación ambiental
	Descripcion     string
	GuardarecursoID string
	AreaID          string // opcional
	Fecha           time.Time
	Estado          string // Programada, En Progreso, Completada
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
