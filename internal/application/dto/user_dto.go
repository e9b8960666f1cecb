package dto

import "time"

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Nombre          string    `json:"nombre"`
	Apellido        string    `json:"apellido"`
	Rol             string    `json:"rol"`
	Estado          string    `json:"estado"`
	GuardarecursoID string    `json:"guardarecurso_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
