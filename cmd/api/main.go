package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/conap-gt/guardarecursos-api/docs"
	"github.com/conap-gt/guardarecursos-api/internal/application/auth"
	"github.com/conap-gt/guardarecursos-api/internal/application/reporte"
	"github.com/conap-gt/guardarecursos-api/internal/application/usecase"
	"github.com/conap-gt/guardarecursos-api/internal/domain/repository"
	"github.com/conap-gt/guardarecursos-api/internal/infrastructure/memoria"
	infrapdf "github.com/conap-gt/guardarecursos-api/internal/infrastructure/pdf"
	"github.com/conap-gt/guardarecursos-api/internal/infrastructure/postgres"
	httpRouter "github.com/conap-gt/guardarecursos-api/internal/interfaces/http"
	"github.com/conap-gt/guardarecursos-api/pkg/config"
	"github.com/conap-gt/guardarecursos-api/pkg/logger"
	"github.com/conap-gt/guardarecursos-api/pkg/token"
)

// repos puertos de persistencia ya construidos para el driver elegido.
type repos struct {
	users          repository.UserRepository
	guardarecursos repository.GuardarecursoRepository
	areas          repository.AreaRepository
	actividades    repository.ActividadRepository
	evidencias     repository.EvidenciaRepository
	metricas       repository.MetricaRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("driver", cfg.Storage.Driver).
		Str("token_mode", cfg.Token.Mode).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var r repos
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.RunMigrations(cfg.DB.ConnectionString(), log); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		r = repos{
			users:          postgres.NewUserRepository(pool),
			guardarecursos: postgres.NewGuardarecursoRepository(pool),
			areas:          postgres.NewAreaRepository(pool),
			actividades:    postgres.NewActividadRepository(pool),
			evidencias:     postgres.NewEvidenciaRepository(pool),
			metricas:       postgres.NewMetricaRepository(pool),
		}
	default:
		mem := memoria.NewRepos()
		if err := mem.SeedDemo(); err != nil {
			log.Fatal().Err(err).Msg("sembrar datos de demostración")
		}
		r = repos{
			users:          mem.Users,
			guardarecursos: mem.Guardarecursos,
			areas:          mem.Areas,
			actividades:    mem.Actividades,
			evidencias:     mem.Evidencias,
			metricas:       mem.Metricas,
		}
	}

	var codec token.Codec
	if cfg.Token.Mode == config.TokenModeFirmado {
		codec = &token.HMACCodec{
			Secret: cfg.Token.Secret,
			Issuer: cfg.Token.Issuer,
			TTL:    time.Duration(cfg.Token.ExpHours) * time.Hour,
		}
	} else {
		codec = &token.PlainCodec{TTL: time.Duration(cfg.Token.ExpHours) * time.Hour}
	}

	authUC := auth.NewAuthUseCase(r.users, codec)
	areaUC := usecase.NewAreaUseCase(r.areas, r.guardarecursos)
	guardaUC := usecase.NewGuardarecursoUseCase(r.guardarecursos)
	actividadUC := usecase.NewActividadUseCase(r.actividades)
	evidenciaUC := usecase.NewEvidenciaUseCase(r.evidencias, r.guardarecursos, r.actividades, r.areas)
	cumplimientoUC := usecase.NewCumplimientoUseCase(r.metricas, r.actividades)

	pdfGenerator := infrapdf.NewMarotoReporteGenerator()
	reporteUC := reporte.NewUseCase(r.guardarecursos, r.areas, r.metricas, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.ObservabilidadMiddleware(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Guardarecursos CONAP API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		AreaUC:          areaUC,
		GuardarecursoUC: guardaUC,
		ActividadUC:     actividadUC,
		EvidenciaUC:     evidenciaUC,
		CumplimientoUC:  cumplimientoUC,
		ReporteUC:       reporteUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
