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

var _ repository.EvidenciaRepository = (*EvidenciaRepo)(nil)

// EvidenciaRepo implementación del puerto EvidenciaRepository sobre PostgreSQL.
// Las referencias actividad_id y guardarecurso_id no llevan FK a propósito:
// pueden quedar colgando y la resolución de relacionados lo tolera.
type EvidenciaRepo struct {
	pool *pgxpool.Pool
}

// NewEvidenciaRepository construye el adaptador de persistencia para evidencias.
func NewEvidenciaRepository(pool *pgxpool.Pool) *EvidenciaRepo {
	return &EvidenciaRepo{pool: pool}
}

const evidenciaColumns = `id, titulo, descripcion, url, latitud, longitud, fecha_captura, clasificacion, actividad_id, guardarecurso_id, created_at`

// Create persiste una evidencia nueva.
func (r *EvidenciaRepo) Create(e *entity.EvidenciaFotografica) error {
	query := `
		INSERT INTO evidencias (` + evidenciaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(context.Background(), query,
		e.ID, e.Titulo, e.Descripcion, e.URL, e.Latitud, e.Longitud,
		e.FechaCaptura, e.Clasificacion, e.ActividadID, e.GuardarecursoID, e.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert evidencia: %w", err)
	}
	return nil
}

// GetByID obtiene una evidencia por ID, (nil, nil) si no existe.
func (r *EvidenciaRepo) GetByID(id string) (*entity.EvidenciaFotografica, error) {
	var e entity.EvidenciaFotografica
	err := r.pool.QueryRow(context.Background(),
		`SELECT `+evidenciaColumns+` FROM evidencias WHERE id = $1`, id).Scan(
		&e.ID, &e.Titulo, &e.Descripcion, &e.URL, &e.Latitud, &e.Longitud,
		&e.FechaCaptura, &e.Clasificacion, &e.ActividadID, &e.GuardarecursoID, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get evidencia: %w", err)
	}
	return &e, nil
}

// List lista todas las evidencias en orden de creación.
func (r *EvidenciaRepo) List() ([]*entity.EvidenciaFotografica, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+evidenciaColumns+` FROM evidencias ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list evidencias: %w", err)
	}
	defer rows.Close()
	var list []*entity.EvidenciaFotografica
	for rows.Next() {
		var e entity.EvidenciaFotografica
		if err := rows.Scan(
			&e.ID, &e.Titulo, &e.Descripcion, &e.URL, &e.Latitud, &e.Longitud,
			&e.FechaCaptura, &e.Clasificacion, &e.ActividadID, &e.GuardarecursoID, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan evidencia: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
