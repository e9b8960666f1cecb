package memoria

import (
	"sync"

	"github.com/conap-gt/guardarecursos-api/internal/domain"
	"github.com/conap-gt/guardarecursos-api/internal/domain/entity"
	"github.com/conap-gt/guardarecursos-api/internal/domain/repository"
)

var _ repository.GuardarecursoRepository = (*GuardarecursoRepo)(nil)

// GuardarecursoRepo tabla de guardarecursos en memoria.
type GuardarecursoRepo struct {
	mu    sync.RWMutex
	orden []string
	porID map[string]*entity.Guardarecurso
}

// NewGuardarecursoRepo construye la tabla vacía.
func NewGuardarecursoRepo() *GuardarecursoRepo {
	return &GuardarecursoRepo{porID: make(map[string]*entity.Guardarecurso)}
}

func (r *GuardarecursoRepo) Create(g *entity.Guardarecurso) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.porID[g.ID]; ok {
		return domain.ErrDuplicate
	}
	copia := *g
	r.porID[g.ID] = &copia
	r.orden = append(r.orden, g.ID)
	return nil
}

func (r *GuardarecursoRepo) GetByID(id string) (*entity.Guardarecurso, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	copia := *g
	return &copia, nil
}

func (r *GuardarecursoRepo) Update(g *entity.Guardarecurso) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.porID[g.ID]; !ok {
		return domain.ErrNotFound
	}
	copia := *g
	r.porID[g.ID] = &copia
	return nil
}

func (r *GuardarecursoRepo) List() ([]*entity.Guardarecurso, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Guardarecurso, 0, len(r.orden))
	for _, id := range r.orden {
		copia := *r.porID[id]
		out = append(out, &copia)
	}
	return out, nil
}

// CountByArea cuenta las referencias de asignación hacia un área.
func (r *GuardarecursoRepo) CountByArea(areaID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, g := range r.porID {
		if g.AreaAsignadaID == areaID {
			n++
		}
	}
	return n, nil
}
