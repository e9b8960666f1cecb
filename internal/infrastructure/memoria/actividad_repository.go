package memoria

import (
	"sync"

	"github.com/conap-gt/guardarecursos-api/internal/domain"
	"github.com/conap-gt/guardarecursos-api/internal/domain/entity"
	"github.com/conap-gt/guardarecursos-api/internal/domain/repository"
)

var _ repository.ActividadRepository = (*ActividadRepo)(nil)

// ActividadRepo tabla de actividades en memoria.
type ActividadRepo struct {
	mu    sync.RWMutex
	orden []string
	porID map[string]*entity.Actividad
}

// NewActividadRepo construye la tabla vacía.
func NewActividadRepo() *ActividadRepo {
	return &ActividadRepo{porID: make(map[string]*entity.Actividad)}
}

func (r *ActividadRepo) Create(a *entity.Actividad) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.porID[a.ID]; ok {
		return domain.ErrDuplicate
	}
	copia := *a
	r.porID[a.ID] = &copia
	r.orden = append(r.orden, a.ID)
	return nil
}

func (r *ActividadRepo) GetByID(id string) (*entity.Actividad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	copia := *a
	return &copia, nil
}

func (r *ActividadRepo) Update(a *entity.Actividad) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.porID[a.ID]; !ok {
		return domain.ErrNotFound
	}
	copia := *a
	r.porID[a.ID] = &copia
	return nil
}

func (r *ActividadRepo) List() ([]*entity.Actividad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Actividad, 0, len(r.orden))
	for _, id := range r.orden {
		copia := *r.porID[id]
		out = append(out, &copia)
	}
	return out, nil
}
