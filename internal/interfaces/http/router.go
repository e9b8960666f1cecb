package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/conap-gt/guardarecursos-api/internal/application/auth"
	"github.com/conap-gt/guardarecursos-api/internal/application/reporte"
	"github.com/conap-gt/guardarecursos-api/internal/application/usecase"
	"github.com/conap-gt/guardarecursos-api/internal/domain/permisos"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	AreaUC          *usecase.AreaUseCase
	GuardarecursoUC *usecase.GuardarecursoUseCase
	ActividadUC     *usecase.ActividadUseCase
	EvidenciaUC     *usecase.EvidenciaUseCase
	CumplimientoUC  *usecase.CumplimientoUseCase
	ReporteUC       *reporte.UseCase
}

// Router registra las rutas de la API. Toda ruta bajo /api salvo login exige
// Bearer; la autorización por módulo corre después con RequirePermiso.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token con sesión vigente)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC))

	protected.Get("/auth/me", authHandler.Me)
	protected.Get("/auth/navegacion", authHandler.Navegacion)
	protected.Put("/auth/password", authHandler.CambiarPassword)

	// Usuarios (administración de cuentas)
	usuarios := protected.Group("/usuarios")
	usuarios.Get("/", RequirePermiso(permisos.ModuloUsuarios, "ver"), authHandler.ListarUsuarios)
	usuarios.Put("/:id/password", RequirePermiso(permisos.ModuloUsuarios, "editar"), authHandler.AdminCambiarPassword)

	// Áreas protegidas
	areas := protected.Group("/areas")
	areaHandler := NewAreaHandler(deps.AreaUC)
	areas.Get("/", RequirePermiso(permisos.ModuloAreas, "ver"), areaHandler.Listar)
	areas.Get("/mapa", RequirePermiso(permisos.ModuloAreas, "ver"), areaHandler.Mapa)
	areas.Get("/:id", RequirePermiso(permisos.ModuloAreas, "ver"), areaHandler.GetByID)
	areas.Post("/", RequirePermiso(permisos.ModuloAreas, "crear"), areaHandler.Create)
	areas.Put("/:id", RequirePermiso(permisos.ModuloAreas, "editar"), areaHandler.Update)
	areas.Get("/:id/desactivacion", RequirePermiso(permisos.ModuloAreas, "eliminar"), areaHandler.ValidarDesactivacion)
	areas.Put("/:id/estado", RequirePermiso(permisos.ModuloAreas, "eliminar"), areaHandler.CambiarEstado)

	// Guardarecursos
	guardas := protected.Group("/guardarecursos")
	guardaHandler := NewGuardarecursoHandler(deps.GuardarecursoUC)
	guardas.Get("/", RequirePermiso(permisos.ModuloGuardarecursos, "ver"), guardaHandler.Listar)
	guardas.Get("/:id", RequirePermiso(permisos.ModuloGuardarecursos, "ver"), guardaHandler.GetByID)
	guardas.Post("/", RequirePermiso(permisos.ModuloGuardarecursos, "crear"), guardaHandler.Create)
	guardas.Put("/:id", RequirePermiso(permisos.ModuloGuardarecursos, "editar"), guardaHandler.Update)

	// Actividades
	actividades := protected.Group("/actividades")
	actividadHandler := NewActividadHandler(deps.ActividadUC)
	actividades.Get("/", RequirePermiso(permisos.ModuloActividades, "ver"), actividadHandler.Listar)
	actividades.Get("/:id", RequirePermiso(permisos.ModuloActividades, "ver"), actividadHandler.GetByID)
	actividades.Post("/", RequirePermiso(permisos.ModuloActividades, "crear"), actividadHandler.Create)
	actividades.Put("/:id/estado", RequirePermiso(permisos.ModuloActividades, "editar"), actividadHandler.CambiarEstado)

	// Evidencias
	evidencias := protected.Group("/evidencias")
	evidenciaHandler := NewEvidenciaHandler(deps.EvidenciaUC)
	evidencias.Get("/", RequirePermiso(permisos.ModuloEvidencias, "ver"), evidenciaHandler.Listar)
	evidencias.Get("/:id", RequirePermiso(permisos.ModuloEvidencias, "ver"), evidenciaHandler.GetByID)
	evidencias.Get("/:id/relacionados", RequirePermiso(permisos.ModuloEvidencias, "ver"), evidenciaHandler.Relacionados)
	evidencias.Post("/", RequirePermiso(permisos.ModuloEvidencias, "crear"), evidenciaHandler.Create)

	// Cumplimiento
	cumplimiento := protected.Group("/cumplimiento")
	cumplimientoHandler := NewCumplimientoHandler(deps.CumplimientoUC)
	cumplimiento.Get("/metricas", RequirePermiso(permisos.ModuloCumplimiento, "ver"), cumplimientoHandler.Metricas)
	cumplimiento.Get("/estadisticas", RequirePermiso(permisos.ModuloCumplimiento, "ver"), cumplimientoHandler.Estadisticas)
	cumplimiento.Post("/metricas", RequirePermiso(permisos.ModuloCumplimiento, "crear"), cumplimientoHandler.CreateMetrica)
	cumplimiento.Put("/metricas/:id", RequirePermiso(permisos.ModuloCumplimiento, "editar"), cumplimientoHandler.UpdateMetrica)

	// Reportes
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	protected.Post("/reportes/cumplimiento", RequirePermiso(permisos.ModuloReportes, "ver"), reporteHandler.Generar)
}
