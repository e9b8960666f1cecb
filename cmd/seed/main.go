// seed puebla una base PostgreSQL con el directorio de demostración: las
// mismas cuentas, áreas, guardarecursos, actividades, evidencias y métricas
// que siembra el driver en memoria al arrancar.
//
// Uso: DATABASE_URL=postgres://... go run ./cmd/seed
// Aplica primero las migraciones pendientes. No es idempotente sobre datos ya
// sembrados: las claves primarias repetidas fallan con duplicado.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/conap-gt/guardarecursos-api/internal/infrastructure/memoria"
	"github.com/conap-gt/guardarecursos-api/internal/infrastructure/postgres"
	"github.com/conap-gt/guardarecursos-api/pkg/config"
	"github.com/conap-gt/guardarecursos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Service: "seed"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(cfg.DB.ConnectionString(), log); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	// Las fixtures viven en el driver de memoria: se siembran ahí y se copian
	// tabla por tabla para no mantener dos juegos de datos.
	mem := memoria.NewRepos()
	if err := mem.SeedDemo(); err != nil {
		log.Fatal().Err(err).Msg("construir fixtures")
	}

	if err := copiar(mem, pool); err != nil {
		log.Fatal().Err(err).Msg("sembrar PostgreSQL")
	}
	log.Info().Msg("directorio de demostración sembrado")
}

func copiar(mem *memoria.Repos, pool *pgxpool.Pool) error {
	users, err := mem.Users.List()
	if err != nil {
		return err
	}
	userRepo := postgres.NewUserRepository(pool)
	for _, u := range users {
		if err := userRepo.Create(u); err != nil {
			return fmt.Errorf("usuario %s: %w", u.ID, err)
		}
	}

	areas, err := mem.Areas.List()
	if err != nil {
		return err
	}
	areaRepo := postgres.NewAreaRepository(pool)
	for _, a := range areas {
		if err := areaRepo.Create(a); err != nil {
			return fmt.Errorf("area %s: %w", a.ID, err)
		}
	}

	guardas, err := mem.Guardarecursos.List()
	if err != nil {
		return err
	}
	guardaRepo := postgres.NewGuardarecursoRepository(pool)
	for _, g := range guardas {
		if err := guardaRepo.Create(g); err != nil {
			return fmt.Errorf("guardarecurso %s: %w", g.ID, err)
		}
	}

	actividades, err := mem.Actividades.List()
	if err != nil {
		return err
	}
	actividadRepo := postgres.NewActividadRepository(pool)
	for _, a := range actividades {
		if err := actividadRepo.Create(a); err != nil {
			return fmt.Errorf("actividad %s: %w", a.ID, err)
		}
	}

	evidencias, err := mem.Evidencias.List()
	if err != nil {
		return err
	}
	evidenciaRepo := postgres.NewEvidenciaRepository(pool)
	for _, e := range evidencias {
		if err := evidenciaRepo.Create(e); err != nil {
			return fmt.Errorf("evidencia %s: %w", e.ID, err)
		}
	}

	metricas, err := mem.Metricas.List()
	if err != nil {
		return err
	}
	metricaRepo := postgres.NewMetricaRepository(pool)
	for _, m := range metricas {
		if err := metricaRepo.Create(m); err != nil {
			return fmt.Errorf("metrica %s: %w", m.ID, err)
		}
	}
	return nil
}
