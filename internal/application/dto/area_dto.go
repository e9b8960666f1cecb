package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAreaRequest entrada para crear un área protegida.
// El primer elemento de Ecosistemas es el ecosistema principal.
type CreateAreaRequest struct {
	Nombre       string          `json:"nombre" validate:"required,min=1,max=200"`
	Departamento string          `json:"departamento" validate:"required"`
	Descripcion  string          `json:"descripcion"`
	Latitud      float64         `json:"latitud" validate:"required"`
	Longitud     float64         `json:"longitud" validate:"required"`
	Ecosistemas  []string        `json:"ecosistemas"`
	Extension    decimal.Decimal `json:"extension"`
}

// UpdateAreaRequest entrada para actualizar un área (estado aparte).
type UpdateAreaRequest struct {
	Nombre       string          `json:"nombre"`
	Departamento string          `json:"departamento"`
	Descripcion  string          `json:"descripcion"`
	Latitud      float64         `json:"latitud"`
	Longitud     float64         `json:"longitud"`
	Ecosistemas  []string        `json:"ecosistemas"`
	Extension    decimal.Decimal `json:"extension"`
}

// CambiarEstadoAreaRequest transición binaria Activo⇄Desactivado.
type CambiarEstadoAreaRequest struct {
	Estado string `json:"estado" validate:"required,oneof=Activo Desactivado"`
}

// AreaResponse salida de un área protegida.
type AreaResponse struct {
	ID                  string          `json:"id"`
	Nombre              string          `json:"nombre"`
	Departamento        string          `json:"departamento"`
	Descripcion         string          `json:"descripcion"`
	Latitud             float64         `json:"latitud"`
	Longitud            float64         `json:"longitud"`
	Ecosistemas         []string        `json:"ecosistemas"`
	EcosistemaPrincipal string          `json:"ecosistema_principal"`
	Extension           decimal.Decimal `json:"extension"`
	Estado              string          `json:"estado"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// ValidacionDesactivacionResponse resultado de la guardia de desactivación.
// Message incluye el conteo exacto de guardarecursos asignados cuando bloquea.
type ValidacionDesactivacionResponse struct {
	IsValid       bool   `json:"isValid"`
	Message       string `json:"message,omitempty"`
	AssignedCount int    `json:"assignedCount"`
}

// PuntoMapaResponse punto proyectado del mapa esquemático.
type PuntoMapaResponse struct {
	AreaID              string  `json:"area_id"`
	Nombre              string  `json:"nombre"`
	X                   float64 `json:"x"`
	Y                   float64 `json:"y"`
	EcosistemaPrincipal string  `json:"ecosistema_principal"`
}
