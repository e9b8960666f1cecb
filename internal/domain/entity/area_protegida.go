package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AreaProtegida área protegida bajo administración de CONAP.
//
// Ecosistemas es una secuencia ordenada: el primer elemento es el ecosistema
// principal del área.
type AreaProtegida struct {
	ID           string
	Nombre       string
	Departamento string
	Descripcion  string
	Latitud      float64
	Longitud     float64
	Ecosistemas  []string
	Extension    decimal.Decimal // hectáreas
	Estado       string          // Activo, Desactivado (binario, sin Suspendido)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EcosistemaPrincipal devuelve el primer ecosistema o vacío si no hay.
func (a *AreaProtegida) EcosistemaPrincipal() string {
	if len(a.Ecosistemas) == 0 {
		return ""
	}
	return a.Ecosistemas[0]
}
