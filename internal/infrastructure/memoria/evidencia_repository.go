package memoria

import (
	"sync"

	"github.com/conap-gt/guardarecursos-api/internal/domain"
	"github.com/conap-gt/guardarecursos-api/internal/domain/entity"
	"github.com/conap-gt/guardarecursos-api/internal/domain/repository"
)

var _ repository.EvidenciaRepository = (*EvidenciaRepo)(nil)

// EvidenciaRepo tabla de evidencias fotográficas en memoria.
type EvidenciaRepo struct {
	mu    sync.RWMutex
	orden []string
	porID map[string]*entity.EvidenciaFotografica
}

// NewEvidenciaRepo construye la tabla vacía.
func NewEvidenciaRepo() *EvidenciaRepo {
	return &EvidenciaRepo{porID: make(map[string]*entity.EvidenciaFotografica)}
}

func (r *EvidenciaRepo) Create(e *entity.EvidenciaFotografica) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.porID[e.ID]; ok {
		return domain.ErrDuplicate
	}
	copia := *e
	r.porID[e.ID] = &copia
	r.orden = append(r.orden, e.ID)
	return nil
}

func (r *EvidenciaRepo) GetByID(id string) (*entity.EvidenciaFotografica, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	copia := *e
	return &copia, nil
}

func (r *EvidenciaRepo) List() ([]*entity.EvidenciaFotografica, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.EvidenciaFotografica, 0, len(r.orden))
	for _, id := range r.orden {
		copia := *r.porID[id]
		out = append(out, &copia)
	}
	return out, nil
}
