package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/conap-gt/guardarecursos-api/internal/application/dto"
	"github.com/conap-gt/guardarecursos-api/internal/domain"
	"github.com/conap-gt/guardarecursos-api/internal/domain/cumplimiento"
	"github.com/conap-gt/guardarecursos-api/internal/domain/entity"
	"github.com/conap-gt/guardarecursos-api/internal/domain/repository"
)

// FiltroGuardarecursoTodos valor del filtro que no restringe por guardarecurso.
const FiltroGuardarecursoTodos = "todos"

// CumplimientoUseCase métricas de cumplimiento y estadísticas del panel.
type CumplimientoUseCase struct {
	metricaRepo   repository.MetricaRepository
	actividadRepo repository.ActividadRepository
}

// NewCumplimientoUseCase construye el caso de uso.
func NewCumplimientoUseCase(metricaRepo repository.MetricaRepository, actividadRepo repository.ActividadRepository) *CumplimientoUseCase {
	return &CumplimientoUseCase{metricaRepo: metricaRepo, actividadRepo: actividadRepo}
}

// FiltrarMetricas lista métricas por período y guardarecurso.
//
// Si quien llama es guardarecurso, el resultado se restringe a sus propias
// métricas sin importar filtroGuardarecurso: el alcance por rol es absoluto y
// gana sobre un filtro contradictorio. Para los demás roles,
// filtroGuardarecurso es "todos" o un ID concreto.
func (uc *CumplimientoUseCase) FiltrarMetricas(periodo, filtroGuardarecurso string, usuario *entity.User) ([]dto.MetricaResponse, error) {
	metricas, err := uc.metricaRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MetricaResponse, 0, len(metricas))
	for _, m := range metricas {
		if usuario != nil && usuario.EsGuardarecurso() {
			if m.GuardarecursoID != usuario.GuardarecursoID {
				continue
			}
		} else if filtroGuardarecurso != "" && filtroGuardarecurso != FiltroGuardarecursoTodos && m.GuardarecursoID != filtroGuardarecurso {
			continue
		}
		if periodo != "" && m.Periodicidad != periodo {
			continue
		}
		out = append(out, *toMetricaResponse(m))
	}
	return out, nil
}

// Estadisticas agrega el panel: conteos de actividades por estado sobre el
// subconjunto visible para el rol y el promedio simple de los porcentajes de
// cumplimiento de las métricas visibles (0 si no hay métricas; nunca divide
// entre cero).
func (uc *CumplimientoUseCase) Estadisticas(usuario *entity.User) (*dto.EstadisticasResponse, error) {
	actividades, err := uc.actividadRepo.List()
	if err != nil {
		return nil, err
	}
	stats := &dto.EstadisticasResponse{}
	for _, a := range actividades {
		if usuario != nil && usuario.EsGuardarecurso() && a.GuardarecursoID != usuario.GuardarecursoID {
			continue
		}
		stats.Total++
		switch a.Estado {
		case entity.ActividadCompletada:
			stats.Completadas++
		case entity.ActividadEnProgreso:
			stats.EnProgreso++
		case entity.ActividadProgramada:
			stats.Programadas++
		}
	}

	metricas, err := uc.metricaRepo.List()
	if err != nil {
		return nil, err
	}
	suma, n := 0.0, 0
	for _, m := range metricas {
		if usuario != nil && usuario.EsGuardarecurso() && m.GuardarecursoID != usuario.GuardarecursoID {
			continue
		}
		suma += cumplimiento.Porcentaje(m.Actual, m.Meta)
		n++
	}
	if n > 0 {
		stats.PromedioCumplimiento = suma / float64(n)
	}
	return stats, nil
}

// CreateMetrica registra una métrica nueva.
func (uc *CumplimientoUseCase) CreateMetrica(in dto.CreateMetricaRequest) (*dto.MetricaResponse, error) {
	now := time.Now()
	m := &entity.MetricaCumplimiento{
		ID:              uuid.New().String(),
		Nombre:          in.Nombre,
		Meta:            in.Meta,
		Actual:          in.Actual,
		Unidad:          in.Unidad,
		Periodicidad:    in.Periodicidad,
		GuardarecursoID: in.GuardarecursoID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.metricaRepo.Create(m); err != nil {
		return nil, err
	}
	return toMetricaResponse(m), nil
}

// UpdateMetrica actualiza meta y valor real.
func (uc *CumplimientoUseCase) UpdateMetrica(id string, in dto.UpdateMetricaRequest) (*dto.MetricaResponse, error) {
	m, err := uc.metricaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if !in.Meta.IsZero() {
		m.Meta = in.Meta
	}
	m.Actual = in.Actual
	m.UpdatedAt = time.Now()
	if err := uc.metricaRepo.Update(m); err != nil {
		return nil, err
	}
	return toMetricaResponse(m), nil
}

func toMetricaResponse(m *entity.MetricaCumplimiento) *dto.MetricaResponse {
	pct := cumplimiento.Porcentaje(m.Actual, m.Meta)
	return &dto.MetricaResponse{
		ID:              m.ID,
		Nombre:          m.Nombre,
		Meta:            m.Meta,
		Actual:          m.Actual,
		Unidad:          m.Unidad,
		Periodicidad:    m.Periodicidad,
		GuardarecursoID: m.GuardarecursoID,
		Porcentaje:      pct,
		Nivel:           cumplimiento.Nivel(pct),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
