package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/conap-gt/guardarecursos-api/internal/domain"
	"github.com/conap-gt/guardarecursos-api/internal/domain/entity"
	"github.com/conap-gt/guardarecursos-api/internal/domain/repository"
)

var _ repository.ActividadRepository = (*ActividadRepo)(nil)

// ActividadRepo implementación del puerto ActividadRepository sobre PostgreSQL.
type ActividadRepo struct {
	pool *pgxpool.Pool
}

// NewActividadRepository construye el adaptador de persistencia para actividades.
func NewActividadRepository(pool *pgxpool.Pool) *ActividadRepo {
	return &ActividadRepo{pool: pool}
}

const actividadColumns = `id, titulo, tipo, descripcion, guardarecurso_id, area_id, fecha, estado, created_at, updated_at`

// Create persiste una actividad nueva.
func (r *ActividadRepo) Create(a *entity.Actividad) error {
	query := `
		INSERT INTO actividades (` + actividadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		a.ID, a.Titulo, a.Tipo, a.Descripcion, a.GuardarecursoID, a.AreaID,
		a.Fecha, a.Estado, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert actividad: %w", err)
	}
	return nil
}

// GetByID obtiene una actividad por ID, (nil, nil) si no existe.
func (r *ActividadRepo) GetByID(id string) (*entity.Actividad, error) {
	var a entity.Actividad
	err := r.pool.QueryRow(context.Background(),
		`SELECT `+actividadColumns+` FROM actividades WHERE id = $1`, id).Scan(
		&a.ID, &a.Titulo, &a.Tipo, &a.Descripcion, &a.GuardarecursoID, &a.AreaID,
		&a.Fecha, &a.Estado, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get actividad: %w", err)
	}
	return &a, nil
}

// Update actualiza una actividad.
func (r *ActividadRepo) Update(a *entity.Actividad) error {
	query := `
		UPDATE actividades
		SET titulo = $2, tipo = $3, descripcion = $4, guardarecurso_id = $5, area_id = $6,
		    fecha = $7, estado = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		a.ID, a.Titulo, a.Tipo, a.Descripcion, a.GuardarecursoID, a.AreaID,
		a.Fecha, a.Estado, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update actividad: %w", err)
	}
	return nil
}

// List lista todas las actividades en orden de creación.
func (r *ActividadRepo) List() ([]*entity.Actividad, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+actividadColumns+` FROM actividades ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list actividades: %w", err)
	}
	defer rows.Close()
	var list []*entity.Actividad
	for rows.Next() {
		var a entity.Actividad
		if err := rows.Scan(
			&a.ID, &a.Titulo, &a.Tipo, &a.Descripcion, &a.GuardarecursoID, &a.AreaID,
			&a.Fecha, &a.Estado, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan actividad: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
