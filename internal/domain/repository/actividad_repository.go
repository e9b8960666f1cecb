package repository

import "github.com/conap-gt/guardarecursos-api/internal/domain/entity"

// ActividadRepository puerto de persistencia para Actividad.
type ActividadRepository interface {
	Create(a *entity.Actividad) error
	GetByID(id string) (*entity.Actividad, error)
	Update(a *entity.Actividad) error
	List() ([]*entity.Actividad, error)
}
