package dto

import "time"

// CreateActividadRequest entrada para programar una actividad.
type CreateActividadRequest struct {
	Titulo          string    `json:"titulo" validate:"required"`
	Tipo            string    `json:"tipo" validate:"required"`
	Descripcion     string    `json:"descripcion"`
	GuardarecursoID string    `json:"guardarecurso_id" validate:"required"`
	AreaID          string    `json:"area_id"`
	Fecha           time.Time `json:"fecha"`
}

// CambiarEstadoActividadRequest transición de estado de la actividad.
type CambiarEstadoActividadRequest struct {
	Estado string `json:"estado" validate:"required,oneof=Programada 'En Progreso' Completada"`
}

// ActividadResponse salida de una actividad.
type ActividadResponse struct {
	ID              string    `json:"id"`
	Titulo          string    `json:"titulo"`
	Tipo            string    `json:"tipo"`
	Descripcion     string    `json:"descripcion"`
	GuardarecursoID string    `json:"guardarecurso_id"`
	AreaID          string    `json:"area_id,omitempty"`
	Fecha           time.Time `json:"fecha"`
	Estado          string    `json:"estado"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
