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

var _ repository.MetricaRepository = (*MetricaRepo)(nil)

// MetricaRepo implementación del puerto MetricaRepository sobre PostgreSQL.
// Meta y actual son NUMERIC y viajan como shopspring/decimal vía el codec
// registrado en el pool.
type MetricaRepo struct {
	pool *pgxpool.Pool
}

// NewMetricaRepository construye el adaptador de persistencia para métricas.
func NewMetricaRepository(pool *pgxpool.Pool) *MetricaRepo {
	return &MetricaRepo{pool: pool}
}

const metricaColumns = `id, nombre, meta, actual, unidad, periodicidad, guardarecurso_id, created_at, updated_at`

// Create persiste una métrica nueva.
func (r *MetricaRepo) Create(m *entity.MetricaCumplimiento) error {
	query := `
		INSERT INTO metricas_cumplimiento (` + metricaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		m.ID, m.Nombre, m.Meta, m.Actual, m.Unidad, m.Periodicidad, m.GuardarecursoID,
		m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert metrica: %w", err)
	}
	return nil
}

// GetByID obtiene una métrica por ID, (nil, nil) si no existe.
func (r *MetricaRepo) GetByID(id string) (*entity.MetricaCumplimiento, error) {
	var m entity.MetricaCumplimiento
	err := r.pool.QueryRow(context.Background(),
		`SELECT `+metricaColumns+` FROM metricas_cumplimiento WHERE id = $1`, id).Scan(
		&m.ID, &m.Nombre, &m.Meta, &m.Actual, &m.Unidad, &m.Periodicidad, &m.GuardarecursoID,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get metrica: %w", err)
	}
	return &m, nil
}

// Update actualiza una métrica.
func (r *MetricaRepo) Update(m *entity.MetricaCumplimiento) error {
	query := `
		UPDATE metricas_cumplimiento
		SET nombre = $2, meta = $3, actual = $4, unidad = $5, periodicidad = $6,
		    guardarecurso_id = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		m.ID, m.Nombre, m.Meta, m.Actual, m.Unidad, m.Periodicidad, m.GuardarecursoID, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update metrica: %w", err)
	}
	return nil
}

// List lista todas las métricas en orden de creación.
func (r *MetricaRepo) List() ([]*entity.MetricaCumplimiento, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+metricaColumns+` FROM metricas_cumplimiento ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list metricas: %w", err)
	}
	defer rows.Close()
	var list []*entity.MetricaCumplimiento
	for rows.Next() {
		var m entity.MetricaCumplimiento
		if err := rows.Scan(
			&m.ID, &m.Nombre, &m.Meta, &m.Actual, &m.Unidad, &m.Periodicidad, &m.GuardarecursoID,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan metrica: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
