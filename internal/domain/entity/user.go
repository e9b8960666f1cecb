package entity

import "time"

// Roles válidos para User.
const (
	RolAdministrador = "Administrador"
	RolCoordinador   = "Coordinador"
	RolGuardarecurso = "Guardarecurso"
)

// Estados de cuenta.
const (
	EstadoActivo      = "Activo"
	EstadoSuspendido  = "Suspendido"
	EstadoDesactivado = "Desactivado"
)

// User representa una cuenta del sistema.
//
// Password se almacena y compara en texto plano porque así lo hace el sistema
// del que este servicio hereda sus datos y su suite de pruebas. Antes de
// cualquier despliegue real debe sustituirse por un esquema de hashing; no
// cambiar la comparación sin migrar también los datos sembrados.
type User struct {
	ID       string
	Email    string
	Password string
	Nombre   string
	Apellido string
	Rol      string // Administrador, Coordinador, Guardarecurso
	Estado   string // Activo, Suspendido, Desactivado
	// GuardarecursoID enlaza la cuenta con su perfil de guardarecurso.
	// Vacío para Administrador y Coordinador. El alcance por rol de
	// evidencias y métricas se resuelve contra este ID.
	GuardarecursoID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EsGuardarecurso indica si la cuenta pertenece al rol más restringido.
func (u *User) EsGuardarecurso() bool {
	return u.Rol == RolGuardarecurso
}

// NombreCompleto nombre y apellido concatenados para presentación.
func (u *User) NombreCompleto() string {
	if u.Apellido == "" {
		return u.Nombre
	}
	return u.Nombre + " " + u.Apellido
}
