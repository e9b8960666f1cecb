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

var _ repository.AreaRepository = (*AreaRepo)(nil)

// AreaRepo implementación del puerto AreaRepository sobre PostgreSQL.
// La columna ecosistemas es TEXT[]; el orden del arreglo se conserva y el
// primer elemento sigue siendo el ecosistema principal.
type AreaRepo struct {
	pool *pgxpool.Pool
}

// NewAreaRepository construye el adaptador de persistencia para áreas protegidas.
func NewAreaRepository(pool *pgxpool.Pool) *AreaRepo {
	return &AreaRepo{pool: pool}
}

const areaColumns = `id, nombre, departamento, descripcion, latitud, longitud, ecosistemas, extension, estado, created_at, updated_at`

// Create persiste un área nueva.
func (r *AreaRepo) Create(a *entity.AreaProtegida) error {
	query := `
		INSERT INTO areas_protegidas (` + areaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(context.Background(), query,
		a.ID, a.Nombre, a.Departamento, a.Descripcion, a.Latitud, a.Longitud,
		a.Ecosistemas, a.Extension, a.Estado, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert area: %w", err)
	}
	return nil
}

// GetByID obtiene un área por ID, (nil, nil) si no existe.
func (r *AreaRepo) GetByID(id string) (*entity.AreaProtegida, error) {
	var a entity.AreaProtegida
	err := r.pool.QueryRow(context.Background(),
		`SELECT `+areaColumns+` FROM areas_protegidas WHERE id = $1`, id).Scan(
		&a.ID, &a.Nombre, &a.Departamento, &a.Descripcion, &a.Latitud, &a.Longitud,
		&a.Ecosistemas, &a.Extension, &a.Estado, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get area: %w", err)
	}
	return &a, nil
}

// Update actualiza un área.
func (r *AreaRepo) Update(a *entity.AreaProtegida) error {
	query := `
		UPDATE areas_protegidas
		SET nombre = $2, departamento = $3, descripcion = $4, latitud = $5, longitud = $6,
		    ecosistemas = $7, extension = $8, estado = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		a.ID, a.Nombre, a.Departamento, a.Descripcion, a.Latitud, a.Longitud,
		a.Ecosistemas, a.Extension, a.Estado, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update area: %w", err)
	}
	return nil
}

// List lista todas las áreas en orden de creación.
func (r *AreaRepo) List() ([]*entity.AreaProtegida, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+areaColumns+` FROM areas_protegidas ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}
	defer rows.Close()
	var list []*entity.AreaProtegida
	for rows.Next() {
		var a entity.AreaProtegida
		if err := rows.Scan(
			&a.ID, &a.Nombre, &a.Departamento, &a.Descripcion, &a.Latitud, &a.Longitud,
			&a.Ecosistemas, &a.Extension, &a.Estado, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan area: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
