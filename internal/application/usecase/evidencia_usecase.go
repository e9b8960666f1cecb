package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/conap-gt/guardarecursos-api/internal/application/dto"
	"github.com/conap-gt/guardarecursos-api/internal/domain"
	"github.com/conap-gt/guardarecursos-api/internal/domain/entity"
	"github.com/conap-gt/guardarecursos-api/internal/domain/repository"
)

// EvidenciaUseCase reglas de negocio de evidencia fotográfica.
type EvidenciaUseCase struct {
	repo          repository.EvidenciaRepository
	guardaRepo    repository.GuardarecursoRepository
	actividadRepo repository.ActividadRepository
	areaRepo      repository.AreaRepository
}

// NewEvidenciaUseCase construye el caso de uso con los repositorios que
// necesita la resolución de relacionados.
func NewEvidenciaUseCase(
	repo repository.EvidenciaRepository,
	guardaRepo repository.GuardarecursoRepository,
	actividadRepo repository.ActividadRepository,
	areaRepo repository.AreaRepository,
) *EvidenciaUseCase {
	return &EvidenciaUseCase{repo: repo, guardaRepo: guardaRepo, actividadRepo: actividadRepo, areaRepo: areaRepo}
}

// Filtrar lista evidencias visibles para el usuario que coinciden con la
// búsqueda (título, descripción o clasificación).
//
// La restricción por rol se aplica ANTES e independiente del filtro de texto:
// un guardarecurso nunca puede buscar fuera de sus propios registros, sin
// importar el término.
func (uc *EvidenciaUseCase) Filtrar(busqueda string, usuario *entity.User) ([]dto.EvidenciaResponse, error) {
	evidencias, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.EvidenciaResponse, 0, len(evidencias))
	for _, e := range evidencias {
		if usuario != nil && usuario.EsGuardarecurso() && e.GuardarecursoID != usuario.GuardarecursoID {
			continue
		}
		if !(contiene(e.Titulo, busqueda) || contiene(e.Descripcion, busqueda) || contiene(e.Clasificacion, busqueda)) {
			continue
		}
		out = append(out, *toEvidenciaResponse(e))
	}
	return out, nil
}

// GetByID obtiene una evidencia, (nil, nil) si no existe.
func (uc *EvidenciaUseCase) GetByID(id string) (*dto.EvidenciaResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil || e == nil {
		return nil, err
	}
	return toEvidenciaResponse(e), nil
}

// Create registra una evidencia. Un guardarecurso crea siempre a su propio
// nombre, ignorando cualquier GuardarecursoID del cuerpo.
func (uc *EvidenciaUseCase) Create(in dto.CreateEvidenciaRequest, usuario *entity.User) (*dto.EvidenciaResponse, error) {
	guardarecursoID := in.GuardarecursoID
	if usuario != nil && usuario.EsGuardarecurso() {
		guardarecursoID = usuario.GuardarecursoID
	}
	fecha := in.FechaCaptura
	if fecha.IsZero() {
		fecha = time.Now()
	}
	e := &entity.EvidenciaFotografica{
		ID:              uuid.New().String(),
		Titulo:          in.Titulo,
		Descripcion:     in.Descripcion,
		URL:             in.URL,
		Latitud:         in.Latitud,
		Longitud:        in.Longitud,
		FechaCaptura:    fecha,
		Clasificacion:   in.Clasificacion,
		ActividadID:     in.ActividadID,
		GuardarecursoID: guardarecursoID,
		CreatedAt:       time.Now(),
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	return toEvidenciaResponse(e), nil
}

// ResolverRelacionados resuelve las referencias de la evidencia a mejor
// esfuerzo: guardarecurso, actividad y, a través de la actividad, el área.
// Las referencias rotas producen campos ausentes; son esperadas y toleradas,
// nunca un error.
func (uc *EvidenciaUseCase) ResolverRelacionados(id string) (*dto.RelacionadosResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}

	out := &dto.RelacionadosResponse{}
	if e.GuardarecursoID != "" {
		if g, err := uc.guardaRepo.GetByID(e.GuardarecursoID); err == nil && g != nil {
			out.Guardarecurso = toGuardarecursoResponse(g)
		}
	}
	if e.ActividadID != "" {
		if a, err := uc.actividadRepo.GetByID(e.ActividadID); err == nil && a != nil {
			out.Actividad = toActividadResponse(a)
			if a.AreaID != "" {
				if area, err := uc.areaRepo.GetByID(a.AreaID); err == nil && area != nil {
					out.Area = toAreaResponse(area)
				}
			}
		}
	}
	return out, nil
}

func toEvidenciaResponse(e *entity.EvidenciaFotografica) *dto.EvidenciaResponse {
	return &dto.EvidenciaResponse{
		ID:              e.ID,
		Titulo:          e.Titulo,
		Descripcion:     e.Descripcion,
		URL:             e.URL,
		Latitud:         e.Latitud,
		Longitud:        e.Longitud,
		FechaCaptura:    e.FechaCaptura,
		Clasificacion:   e.Clasificacion,
		ActividadID:     e.ActividadID,
		GuardarecursoID: e.GuardarecursoID,
		CreatedAt:       e.CreatedAt,
	}
}
