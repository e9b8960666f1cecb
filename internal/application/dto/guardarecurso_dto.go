package dto

import "time"

// CreateGuardarecursoRequest entrada para registrar un guardarecurso.
type CreateGuardarecursoRequest struct {
	Codigo         string    `json:"codigo" validate:"required"`
	Nombre         string    `json:"nombre" validate:"required"`
	Apellido       string    `json:"apellido" validate:"required"`
	DPI            string    `json:"dpi"`
	Telefono       string    `json:"telefono"`
	Email          string    `json:"email" validate:"omitempty,email"`
	AreaAsignadaID string    `json:"area_asignada_id"`
	FechaIngreso   time.Time `json:"fecha_ingreso"`
}

// UpdateGuardarecursoRequest actualización de perfil y asignación.
type UpdateGuardarecursoRequest struct {
	Nombre         string `json:"nombre"`
	Apellido       string `json:"apellido"`
	DPI            string `json:"dpi"`
	Telefono       string `json:"telefono"`
	Email          string `json:"email"`
	AreaAsignadaID string `json:"area_asignada_id"`
	Estado         string `json:"estado"`
}

// GuardarecursoResponse salida de un guardarecurso.
type GuardarecursoResponse struct {
	ID             string    `json:"id"`
	Codigo         string    `json:"codigo"`
	Nombre         string    `json:"nombre"`
	Apellido       string    `json:"apellido"`
	DPI            string    `json:"dpi"`
	Telefono       string    `json:"telefono"`
	Email          string    `json:"email"`
	AreaAsignadaID string    `json:"area_asignada_id,omitempty"`
	Estado         string    `json:"estado"`
	FechaIngreso   time.Time `json:"fecha_ingreso"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
