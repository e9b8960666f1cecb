package repository

import "github.com/conap-gt/guardarecursos-api/internal/domain/entity"

// AreaRepository puerto de persistencia para AreaProtegida.
type AreaRepository interface {
	Create(a *entity.AreaProtegida) error
	GetByID(id string) (*entity.AreaProtegida, error)
	Update(a *entity.AreaProtegida) error
	List() ([]*entity.AreaProtegida, error)
}
