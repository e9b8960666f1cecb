package repository

import "github.com/conap-gt/guardarecursos-api/internal/domain/entity"

// MetricaRepository puerto de persistencia para MetricaCumplimiento.
type MetricaRepository interface {
	Create(m *entity.MetricaCumplimiento) error
	GetByID(id string) (*entity.MetricaCumplimiento, error)
	Update(m *entity.MetricaCumplimiento) error
	List() ([]*entity.MetricaCumplimiento, error)
}
