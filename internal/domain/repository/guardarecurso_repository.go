package repository

import "github.com/conap-gt/guardarecursos-api/internal/domain/entity"

// GuardarecursoRepository puerto de persistencia para Guardarecurso.
type GuardarecursoRepository interface {
	Create(g *entity.Guardarecurso) error
	GetByID(id string) (*entity.Guardarecurso, error)
	Update(g *entity.Guardarecurso) error
	List() ([]*entity.Guardarecurso, error)
	// CountByArea cuenta los guardarecursos cuya área asignada es areaID.
	// Alimenta la guardia de desactivación de áreas.
	CountByArea(areaID string) (int, error)
}
