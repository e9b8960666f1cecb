package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conap-gt/guardarecursos-api/internal/application/auth"
	"github.com/conap-gt/guardarecursos-api/internal/application/dto"
	"github.com/conap-gt/guardarecursos-api/internal/domain/entity"
	"github.com/conap-gt/guardarecursos-api/internal/infrastructure/memoria"
	"github.com/conap-gt/guardarecursos-api/pkg/token"
)

func newAuthUC(t *testing.T) (*auth.AuthUseCase, *memoria.Repos) {
	t.Helper()
	mem := memoria.NewRepos()
	require.NoError(t, mem.SeedDemo())
	uc := auth.NewAuthUseCase(mem.Users, &token.PlainCodec{TTL: 24 * time.Hour})
	return uc, mem
}

func TestLogin_Exitoso(t *testing.T) {
	uc, _ := newAuthUC(t)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@conap.gob.gt", Password: "admin123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "usr-001", out.User.ID)
	assert.Equal(t, entity.RolAdministrador, out.User.Rol)
}

// El mensaje genérico no distingue email inexistente, contraseña incorrecta ni
// cuenta desactivada: los tres casos deben ser indistinguibles para el cliente.
func TestLogin_MensajeGenericoIndistinguible(t *testing.T) {
	uc, _ := newAuthUC(t)

	casos := []dto.LoginRequest{
		{Email: "noexiste@conap.gob.gt", Password: "admin123"},
		{Email: "admin@conap.gob.gt", Password: "incorrecta"},
		{Email: "baja@conap.gob.gt", Password: "guarda123"}, // cuenta Desactivado
	}
	for _, in := range casos {
		_, err := uc.Login(in)
		assert.ErrorIs(t, err, auth.ErrCredencialesInvalidas, "caso %s", in.Email)
	}
}

func TestLogin_SuspendidoTieneMensajePropio(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: "suspendido@conap.gob.gt", Password: "guarda123"})
	assert.ErrorIs(t, err, auth.ErrCuentaSuspendida)
	assert.Equal(t, "Su cuenta ha sido suspendida. Contacte al administrador.", err.Error())
}

func TestResolveSessionUser_TokenValido(t *testing.T) {
	uc, _ := newAuthUC(t)

	out, err := uc.Login(dto.LoginRequest{Email: "jperez@conap.gob.gt", Password: "guarda123"})
	require.NoError(t, err)

	user, err := uc.ResolveSessionUser(out.Token)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "usr-003", user.ID)
	assert.Equal(t, "gr-001", user.GuardarecursoID)
}

// Un token emitido antes de la suspensión deja de servir: la resolución
// re-verifica el estado actual de la cuenta.
func TestResolveSessionUser_SuspensionPosteriorInvalidaSesion(t *testing.T) {
	uc, mem := newAuthUC(t)

	out, err := uc.Login(dto.LoginRequest{Email: "jperez@conap.gob.gt", Password: "guarda123"})
	require.NoError(t, err)

	u, err := mem.Users.GetByID("usr-003")
	require.NoError(t, err)
	u.Estado = entity.EstadoSuspendido
	require.NoError(t, mem.Users.Update(u))

	user, err := uc.ResolveSessionUser(out.Token)
	require.NoError(t, err)
	assert.Nil(t, user, "la sesión no debe sobrevivir a la suspensión")
}

func TestResolveSessionUser_TokenExpirado(t *testing.T) {
	mem := memoria.NewRepos()
	require.NoError(t, mem.SeedDemo())
	codec := &token.PlainCodec{TTL: -time.Millisecond}
	uc := auth.NewAuthUseCase(mem.Users, codec)

	tok, err := codec.Issue("usr-001", "admin@conap.gob.gt", entity.RolAdministrador)
	require.NoError(t, err)

	_, err = uc.ResolveSessionUser(tok)
	assert.ErrorIs(t, err, token.ErrExpirado)
}

// Las verificaciones del cambio de contraseña corren en orden fijo: la actual
// incorrecta gana aunque la nueva también sea inválida.
func TestChangeOwnPassword_OrdenDeVerificaciones(t *testing.T) {
	uc, _ := newAuthUC(t)

	err := uc.ChangeOwnPassword("usr-001", "incorrecta", "abc", "xyz")
	assert.ErrorIs(t, err, auth.ErrPasswordActualIncorrecta)

	err = uc.ChangeOwnPassword("usr-001", "admin123", "abc", "xyz")
	assert.ErrorIs(t, err, auth.ErrPasswordMuyCorta)

	err = uc.ChangeOwnPassword("usr-001", "admin123", "nueva123", "otra123")
	assert.ErrorIs(t, err, auth.ErrPasswordsNoCoinciden)

	err = uc.ChangeOwnPassword("usr-001", "admin123", "admin123", "admin123")
	assert.ErrorIs(t, err, auth.ErrPasswordSinCambio)
}

func TestChangeOwnPassword_Exitoso(t *testing.T) {
	uc, mem := newAuthUC(t)

	require.NoError(t, uc.ChangeOwnPassword("usr-001", "admin123", "nueva123", "nueva123"))

	u, err := mem.Users.GetByID("usr-001")
	require.NoError(t, err)
	assert.Equal(t, "nueva123", u.Password)

	_, err = uc.Login(dto.LoginRequest{Email: "admin@conap.gob.gt", Password: "admin123"})
	assert.ErrorIs(t, err, auth.ErrCredencialesInvalidas, "la contraseña anterior ya no sirve")
}

func TestChangeUserPasswordByAdmin_SoloAdministrador(t *testing.T) {
	uc, _ := newAuthUC(t)

	err := uc.ChangeUserPasswordByAdmin("usr-002", "usr-003", "nueva123", "nueva123")
	assert.ErrorIs(t, err, auth.ErrSoloAdministrador, "un coordinador no restablece contraseñas")
}

// Ni siquiera un administrador restablece la contraseña de otro administrador.
func TestChangeUserPasswordByAdmin_ObjetivoAdministradorProhibido(t *testing.T) {
	uc, mem := newAuthUC(t)

	otro := &entity.User{ID: "usr-099", Email: "admin2@conap.gob.gt", Password: "admin456",
		Nombre: "Ana", Rol: entity.RolAdministrador, Estado: entity.EstadoActivo}
	require.NoError(t, mem.Users.Create(otro))

	err := uc.ChangeUserPasswordByAdmin("usr-001", "usr-099", "nueva123", "nueva123")
	assert.ErrorIs(t, err, auth.ErrObjetivoAdministrador)
}

func TestChangeUserPasswordByAdmin_Exitoso(t *testing.T) {
	uc, mem := newAuthUC(t)

	require.NoError(t, uc.ChangeUserPasswordByAdmin("usr-001", "usr-003", "nueva123", "nueva123"))

	u, err := mem.Users.GetByID("usr-003")
	require.NoError(t, err)
	assert.Equal(t, "nueva123", u.Password)
}
