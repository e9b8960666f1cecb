// Package auth implementa autenticación, resolución de sesión y cambio de
// contraseñas.
//
// Las comparaciones de contraseña son en texto plano porque el sistema hereda
// los datos y el comportamiento observable del cliente original; ver el aviso
// en entity.User antes de tocar esto.
package auth

import (
	"errors"

	"github.com/conap-gt/guardarecursos-api/internal/application/dto"
	"github.com/conap-gt/guardarecursos-api/internal/domain/entity"
	"github.com/conap-gt/guardarecursos-api/internal/domain/repository"
	"github.com/conap-gt/guardarecursos-api/pkg/metrics"
	"github.com/conap-gt/guardarecursos-api/pkg/token"
)

// Errores de negocio con el mensaje exacto que ve el usuario final. El mensaje
// genérico cubre email inexistente, contraseña incorrecta y cuenta
// desactivada: no se revela la existencia ni el estado de la cuenta a un
// llamador no autenticado. Solo la suspensión tiene mensaje propio.
var (
	ErrCredencialesInvalidas = errors.New("Credenciales inválidas")
	ErrCuentaSuspendida      = errors.New("Su cuenta ha sido suspendida. Contacte al administrador.")

	ErrPasswordActualIncorrecta = errors.New("La contraseña actual es incorrecta")
	ErrPasswordMuyCorta         = errors.New("La nueva contraseña debe tener al menos 6 caracteres")
	ErrPasswordsNoCoinciden     = errors.New("Las contraseñas no coinciden")
	ErrPasswordSinCambio        = errors.New("La nueva contraseña debe ser diferente a la actual")

	ErrSoloAdministrador     = errors.New("Solo un administrador puede realizar esta operación")
	ErrObjetivoAdministrador = errors.New("No es posible cambiar la contraseña de otro administrador")
)

const passwordMinLen = 6

// AuthUseCase casos de uso de autenticación y sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	codec    token.Codec
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, codec token.Codec) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, codec: codec}
}

// Login valida email y contraseña contra la tabla de usuarios y emite el
// token de sesión. Solo cuentas con estado Activo inician sesión.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password != in.Password {
		metrics.LoginAttempts.WithLabelValues("credenciales_invalidas").Inc()
		return nil, ErrCredencialesInvalidas
	}
	switch user.Estado {
	case entity.EstadoActivo:
		// continúa
	case entity.EstadoSuspendido:
		metrics.LoginAttempts.WithLabelValues("cuenta_suspendida").Inc()
		return nil, ErrCuentaSuspendida
	default:
		// Desactivado y cualquier otro estado colapsan al mensaje genérico.
		metrics.LoginAttempts.WithLabelValues("credenciales_invalidas").Inc()
		return nil, ErrCredencialesInvalidas
	}

	tok, err := uc.codec.Issue(user.ID, user.Email, user.Rol)
	if err != nil {
		return nil, err
	}
	metrics.LoginAttempts.WithLabelValues("exitoso").Inc()
	return &dto.LoginResponse{Token: tok, User: *toUserResponse(user)}, nil
}

// ResolveSessionUser decodifica el token, vuelve a consultar el usuario y
// exige que su estado ACTUAL sea Activo: una sesión no sobrevive a la
// suspensión o desactivación posterior a la emisión. No existe lista de
// revocación; esta re-verificación por resolución es el mecanismo de
// invalidación.
//
// Devuelve (nil, error) ante token malformado/expirado y (nil, nil) cuando el
// token es válido pero el usuario ya no existe o no está Activo.
func (uc *AuthUseCase) ResolveSessionUser(tok string) (*entity.User, error) {
	claims, err := uc.codec.Decode(tok)
	if err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(claims.ID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Estado != entity.EstadoActivo {
		return nil, nil
	}
	return user, nil
}

// ChangeOwnPassword cambia la contraseña del propio usuario. Las
// verificaciones corren en orden fijo y la primera que falla gana:
// actual incorrecta → longitud mínima → confirmación → debe ser distinta.
func (uc *AuthUseCase) ChangeOwnPassword(userID, actual, nueva, confirmacion string) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrCredencialesInvalidas
	}
	if user.Password != actual {
		return ErrPasswordActualIncorrecta
	}
	if len(nueva) < passwordMinLen {
		return ErrPasswordMuyCorta
	}
	if nueva != confirmacion {
		return ErrPasswordsNoCoinciden
	}
	if nueva == actual {
		return ErrPasswordSinCambio
	}
	user.Password = nueva
	return uc.userRepo.Update(user)
}

// ChangeUserPasswordByAdmin cambia la contraseña de otro usuario. Requiere
// que quien llama sea Administrador y prohíbe incondicionalmente que el
// objetivo sea otro Administrador: ni siquiera un admin restablece la clave
// de otro admin por esta vía.
func (uc *AuthUseCase) ChangeUserPasswordByAdmin(adminID, targetID, nueva, confirmacion string) error {
	admin, err := uc.userRepo.GetByID(adminID)
	if err != nil {
		return err
	}
	if admin == nil || admin.Rol != entity.RolAdministrador {
		return ErrSoloAdministrador
	}
	target, err := uc.userRepo.GetByID(targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrCredencialesInvalidas
	}
	if target.Rol == entity.RolAdministrador {
		return ErrObjetivoAdministrador
	}
	if len(nueva) < passwordMinLen {
		return ErrPasswordMuyCorta
	}
	if nueva != confirmacion {
		return ErrPasswordsNoCoinciden
	}
	target.Password = nueva
	return uc.userRepo.Update(target)
}

// ListUsers lista las cuentas del sistema (pantalla de administración).
func (uc *AuthUseCase) ListUsers() ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		Nombre:          u.Nombre,
		Apellido:        u.Apellido,
		Rol:             u.Rol,
		Estado:          u.Estado,
		GuardarecursoID: u.GuardarecursoID,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}
