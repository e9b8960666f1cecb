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

var _ repository.GuardarecursoRepository = (*GuardarecursoRepo)(nil)

// GuardarecursoRepo implementación del puerto GuardarecursoRepository sobre PostgreSQL.
type GuardarecursoRepo struct {
	pool *pgxpool.Pool
}

// NewGuardarecursoRepository construye el adaptador de persistencia para guardarecursos.
func NewGuardarecursoRepository(pool *pgxpool.Pool) *GuardarecursoRepo {
	return &GuardarecursoRepo{pool: pool}
}

const guardaColumns = `id, codigo, nombre, apellido, dpi, telefono, email, area_asignada_id, estado, fecha_ingreso, created_at, updated_at`

// Create persiste un perfil nuevo.
func (r *GuardarecursoRepo) Create(g *entity.Guardarecurso) error {
	query := `
		INSERT INTO guardarecursos (` + guardaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(context.Background(), query,
		g.ID, g.Codigo, g.Nombre, g.Apellido, g.DPI, g.Telefono, g.Email,
		g.AreaAsignadaID, g.Estado, g.FechaIngreso, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert guardarecurso: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID, (nil, nil) si no existe.
func (r *GuardarecursoRepo) GetByID(id string) (*entity.Guardarecurso, error) {
	var g entity.Guardarecurso
	err := r.pool.QueryRow(context.Background(),
		`SELECT `+guardaColumns+` FROM guardarecursos WHERE id = $1`, id).Scan(
		&g.ID, &g.Codigo, &g.Nombre, &g.Apellido, &g.DPI, &g.Telefono, &g.Email,
		&g.AreaAsignadaID, &g.Estado, &g.FechaIngreso, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get guardarecurso: %w", err)
	}
	return &g, nil
}

// Update actualiza un perfil.
func (r *GuardarecursoRepo) Update(g *entity.Guardarecurso) error {
	query := `
		UPDATE guardarecursos
		SET codigo = $2, nombre = $3, apellido = $4, dpi = $5, telefono = $6, email = $7,
		    area_asignada_id = $8, estado = $9, fecha_ingreso = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		g.ID, g.Codigo, g.Nombre, g.Apellido, g.DPI, g.Telefono, g.Email,
		g.AreaAsignadaID, g.Estado, g.FechaIngreso, g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update guardarecurso: %w", err)
	}
	return nil
}

// List lista todos los perfiles en orden de creación.
func (r *GuardarecursoRepo) List() ([]*entity.Guardarecurso, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+guardaColumns+` FROM guardarecursos ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list guardarecursos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Guardarecurso
	for rows.Next() {
		var g entity.Guardarecurso
		if err := rows.Scan(
			&g.ID, &g.Codigo, &g.Nombre, &g.Apellido, &g.DPI, &g.Telefono, &g.Email,
			&g.AreaAsignadaID, &g.Estado, &g.FechaIngreso, &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan guardarecurso: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// CountByArea cuenta los guardarecursos con el área asignada.
func (r *GuardarecursoRepo) CountByArea(areaID string) (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM guardarecursos WHERE area_asignada_id = $1`, areaID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count guardarecursos por area: %w", err)
	}
	return n, nil
}
