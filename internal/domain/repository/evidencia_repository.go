package repository

import "github.com/conap-gt/guardarecursos-api/internal/domain/entity"

// EvidenciaRepository puerto de persistencia para EvidenciaFotografica.
type EvidenciaRepository interface {
	Create(e *entity.EvidenciaFotografica) error
	GetByID(id string) (*entity.EvidenciaFotografica, error)
	List() ([]*entity.EvidenciaFotografica, error)
}
