package memoria

import (
	"sync"

	"github.com/conap-gt/guardarecursos-api/internal/domain"
	"github.com/conap-gt/guardarecursos-api/internal/domain/entity"
	"github.com/conap-gt/guardarecursos-api/internal/domain/repository"
)

var _ repository.MetricaRepository = (*MetricaRepo)(nil)

// MetricaRepo tabla de métricas de cumplimiento en memoria.
type MetricaRepo struct {
	mu    sync.RWMutex
	orden []string
	porID map[string]*entity.MetricaCumplimiento
}

// NewMetricaRepo construye la tabla vacía.
func NewMetricaRepo() *MetricaRepo {
	return &MetricaRepo{porID: make(map[string]*entity.MetricaCumplimiento)}
}

func (r *MetricaRepo) Create(m *entity.MetricaCumplimiento) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.porID[m.ID]; ok {
		return domain.ErrDuplicate
	}
	copia := *m
	r.porID[m.ID] = &copia
	r.orden = append(r.orden, m.ID)
	return nil
}

func (r *MetricaRepo) GetByID(id string) (*entity.MetricaCumplimiento, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	copia := *m
	return &copia, nil
}

func (r *MetricaRepo) Update(m *entity.MetricaCumplimiento) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.porID[m.ID]; !ok {
		return domain.ErrNotFound
	}
	copia := *m
	r.porID[m.ID] = &copia
	return nil
}

func (r *MetricaRepo) List() ([]*entity.MetricaCumplimiento, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.MetricaCumplimiento, 0, len(r.orden))
	for _, id := range r.orden {
		copia := *r.porID[id]
		out = append(out, &copia)
	}
	return out, nil
}
