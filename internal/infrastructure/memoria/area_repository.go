package memoria

import (
	"sync"

	"github.com/conap-gt/guardarecursos-api/internal/domain"
	"github.com/conap-gt/guardarecursos-api/internal/domain/entity"
	"github.com/conap-gt/guardarecursos-api/internal/domain/repository"
)

var _ repository.AreaRepository = (*AreaRepo)(nil)

// AreaRepo tabla de áreas protegidas en memoria.
type AreaRepo struct {
	mu    sync.RWMutex
	orden []string
	porID map[string]*entity.AreaProtegida
}

// NewAreaRepo construye la tabla vacía.
func NewAreaRepo() *AreaRepo {
	return &AreaRepo{porID: make(map[string]*entity.AreaProtegida)}
}

func (r *AreaRepo) Create(a *entity.AreaProtegida) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.porID[a.ID]; ok {
		return domain.ErrDuplicate
	}
	copia := copiaArea(a)
	r.porID[a.ID] = copia
	r.orden = append(r.orden, a.ID)
	return nil
}

func (r *AreaRepo) GetByID(id string) (*entity.AreaProtegida, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	return copiaArea(a), nil
}

func (r *AreaRepo) Update(a *entity.AreaProtegida) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.porID[a.ID]; !ok {
		return domain.ErrNotFound
	}
	r.porID[a.ID] = copiaArea(a)
	return nil
}

func (r *AreaRepo) List() ([]*entity.AreaProtegida, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.AreaProtegida, 0, len(r.orden))
	for _, id := range r.orden {
		out = append(out, copiaArea(r.porID[id]))
	}
	return out, nil
}

// copiaArea copia profunda: Ecosistemas es un slice y no debe compartirse
// entre el snapshot y la tabla.
func copiaArea(a *entity.AreaProtegida) *entity.AreaProtegida {
	copia := *a
	copia.Ecosistemas = append([]string(nil), a.Ecosistemas...)
	return &copia
}
