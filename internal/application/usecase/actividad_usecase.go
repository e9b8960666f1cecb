package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/conap-gt/guardarecursos-api/internal/application/dto"
	"github.com/conap-gt/guardarecursos-api/internal/domain"
	"github.com/conap-gt/guardarecursos-api/internal/domain/entity"
	"github.com/conap-gt/guardarecursos-api/internal/domain/repository"
)

// ActividadUseCase reglas de negocio de actividades de campo.
type ActividadUseCase struct {
	repo repository.ActividadRepository
}

// NewActividadUseCase construye el caso de uso.
func NewActividadUseCase(repo repository.ActividadRepository) *ActividadUseCase {
	return &ActividadUseCase{repo: repo}
}

// Listar devuelve las actividades visibles para el usuario, opcionalmente
// filtradas por estado. Un guardarecurso solo ve sus propias actividades; el
// alcance por rol se aplica antes e independiente del filtro de estado.
func (uc *ActividadUseCase) Listar(estado string, usuario *entity.User) ([]dto.ActividadResponse, error) {
	actividades, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActividadResponse, 0, len(actividades))
	for _, a := range actividades {
		if usuario != nil && usuario.EsGuardarecurso() && a.GuardarecursoID != usuario.GuardarecursoID {
			continue
		}
		if estado != "" && a.Estado != estado {
			continue
		}
		out = append(out, *toActividadResponse(a))
	}
	return out, nil
}

// GetByID obtiene una actividad, (nil, nil) si no existe.
func (uc *ActividadUseCase) GetByID(id string) (*dto.ActividadResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil || a == nil {
		return nil, err
	}
	return toActividadResponse(a), nil
}

// Create programa una actividad nueva en estado Programada.
func (uc *ActividadUseCase) Create(in dto.CreateActividadRequest) (*dto.ActividadResponse, error) {
	now := time.Now()
	fecha := in.Fecha
	if fecha.IsZero() {
		fecha = now
	}
	a := &entity.Actividad{
		ID:              uuid.New().String(),
		Titulo:          in.Titulo,
		Tipo:            in.Tipo,
		Descripcion:     in.Descripcion,
		GuardarecursoID: in.GuardarecursoID,
		AreaID:          in.AreaID,
		Fecha:           fecha,
		Estado:          entity.ActividadProgramada,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	return toActividadResponse(a), nil
}

// CambiarEstado transiciona la actividad. Un guardarecurso solo puede mover
// sus propias actividades; repetir el estado actual es ErrSinCambio.
func (uc *ActividadUseCase) CambiarEstado(id, nuevo string, usuario *entity.User) (*dto.ActividadResponse, error) {
	if nuevo != entity.ActividadProgramada && nuevo != entity.ActividadEnProgreso && nuevo != entity.ActividadCompletada {
		return nil, domain.ErrInvalidInput
	}
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if usuario != nil && usuario.EsGuardarecurso() && a.GuardarecursoID != usuario.GuardarecursoID {
		return nil, domain.ErrForbidden
	}
	if a.Estado == nuevo {
		return nil, domain.ErrSinCambio
	}
	a.Estado = nuevo
	a.UpdatedAt = time.Now()
	if err := uc.repo.Update(a); err != nil {
		return nil, err
	}
	return toActividadResponse(a), nil
}

func toActividadResponse(a *entity.Actividad) *dto.ActividadResponse {
	return &dto.ActividadResponse{
		ID:              a.ID,
		Titulo:          a.Titulo,
		Tipo:            a.Tipo,
		Descripcion:     a.Descripcion,
		GuardarecursoID: a.GuardarecursoID,
		AreaID:          a.AreaID,
		Fecha:           a.Fecha,
		Estado:          a.Estado,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
