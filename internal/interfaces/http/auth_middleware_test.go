package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conap-gt/guardarecursos-api/internal/application/auth"
	"github.com/conap-gt/guardarecursos-api/internal/application/dto"
	"github.com/conap-gt/guardarecursos-api/internal/application/reporte"
	"github.com/conap-gt/guardarecursos-api/internal/application/usecase"
	"github.com/conap-gt/guardarecursos-api/internal/domain/entity"
	"github.com/conap-gt/guardarecursos-api/internal/infrastructure/memoria"
	"github.com/conap-gt/guardarecursos-api/internal/infrastructure/pdf"
	apphttp "github.com/conap-gt/guardarecursos-api/internal/interfaces/http"
	"github.com/conap-gt/guardarecursos-api/pkg/token"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp levanta la aplicación completa sobre los repos en memoria con
// los datos de demostración, igual que el arranque por defecto del binario.
func buildTestApp(t *testing.T) (*fiber.App, *memoria.Repos) {
	t.Helper()
	mem := memoria.NewRepos()
	require.NoError(t, mem.SeedDemo())

	authUC := auth.NewAuthUseCase(mem.Users, &token.PlainCodec{TTL: 24 * time.Hour})
	reporteUC := reporte.NewUseCase(mem.Guardarecursos, mem.Areas, mem.Metricas, pdf.NewMarotoReporteGenerator())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:          authUC,
		AreaUC:          usecase.NewAreaUseCase(mem.Areas, mem.Guardarecursos),
		GuardarecursoUC: usecase.NewGuardarecursoUseCase(mem.Guardarecursos),
		ActividadUC:     usecase.NewActividadUseCase(mem.Actividades),
		EvidenciaUC:     usecase.NewEvidenciaUseCase(mem.Evidencias, mem.Guardarecursos, mem.Actividades, mem.Areas),
		CumplimientoUC:  usecase.NewCumplimientoUseCase(mem.Metricas, mem.Actividades),
		ReporteUC:       reporteUC,
	})
	return app, mem
}

// loginToken hace login contra la app y devuelve el header Authorization.
func loginToken(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	body, err := json.Marshal(dto.LoginRequest{Email: email, Password: password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "el login de prueba debe funcionar")

	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return "Bearer " + out.Token
}

// doGet lanza un GET con el header Authorization indicado.
func doGet(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeaderRetorna401(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doGet(t, app, "/api/usuarios", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenMalformadoRetorna401(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doGet(t, app, "/api/usuarios", "Bearer token.invalido")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// La sesión no sobrevive a una suspensión posterior a la emisión del token.
func TestAuthMiddleware_SuspensionInvalidaSesionVigente(t *testing.T) {
	app, mem := buildTestApp(t)
	header := loginToken(t, app, "jperez@conap.gob.gt", "guarda123")

	resp := doGet(t, app, "/api/actividades", header)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	u, err := mem.Users.GetByID("usr-003")
	require.NoError(t, err)
	u.Estado = entity.EstadoSuspendido
	require.NoError(t, mem.Users.Update(u))

	resp = doGet(t, app, "/api/actividades", header)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "SESSION_INVALID")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePermiso
// ──────────────────────────────────────────────────────────────────────────────

func TestRequirePermiso_AdminListaUsuarios(t *testing.T) {
	app, _ := buildTestApp(t)
	header := loginToken(t, app, "admin@conap.gob.gt", "admin123")

	resp := doGet(t, app, "/api/usuarios", header)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// La matriz niega por defecto: el módulo de usuarios no existe para un
// guardarecurso, aunque su token sea válido.
func TestRequirePermiso_GuardarecursoBloqueadoEnUsuarios(t *testing.T) {
	app, _ := buildTestApp(t)
	header := loginToken(t, app, "jperez@conap.gob.gt", "guarda123")

	resp := doGet(t, app, "/api/usuarios", header)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequirePermiso_GuardarecursoSiVeSusModulos(t *testing.T) {
	app, _ := buildTestApp(t)
	header := loginToken(t, app, "jperez@conap.gob.gt", "guarda123")

	for _, path := range []string{"/api/actividades", "/api/evidencias", "/api/cumplimiento/metricas"} {
		resp := doGet(t, app, path, header)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, "ruta %s", path)
	}
}

func TestLogin_CuentaSuspendidaRetorna403(t *testing.T) {
	app, _ := buildTestApp(t)

	body, err := json.Marshal(dto.LoginRequest{Email: "suspendido@conap.gob.gt", Password: "guarda123"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "Su cuenta ha sido suspendida")
}
