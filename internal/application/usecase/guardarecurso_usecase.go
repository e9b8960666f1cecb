package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/conap-gt/guardarecursos-api/internal/application/dto"
	"github.com/conap-gt/guardarecursos-api/internal/domain"
	"github.com/conap-gt/guardarecursos-api/internal/domain/entity"
	"github.com/conap-gt/guardarecursos-api/internal/domain/repository"
)

// GuardarecursoUseCase reglas de negocio de perfiles de guardarecursos.
type GuardarecursoUseCase struct {
	repo repository.GuardarecursoRepository
}

// NewGuardarecursoUseCase construye el caso de uso.
func NewGuardarecursoUseCase(repo repository.GuardarecursoRepository) *GuardarecursoUseCase {
	return &GuardarecursoUseCase{repo: repo}
}

// Filtrar lista guardarecursos cuyo nombre, apellido o código coincide con la
// búsqueda (subcadena, insensible a mayúsculas y tildes).
func (uc *GuardarecursoUseCase) Filtrar(busqueda string) ([]dto.GuardarecursoResponse, error) {
	guardas, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.GuardarecursoResponse, 0, len(guardas))
	for _, g := range guardas {
		if !(contiene(g.Nombre, busqueda) || contiene(g.Apellido, busqueda) || contiene(g.Codigo, busqueda)) {
			continue
		}
		out = append(out, *toGuardarecursoResponse(g))
	}
	return out, nil
}

// GetByID obtiene un guardarecurso, (nil, nil) si no existe.
func (uc *GuardarecursoUseCase) GetByID(id string) (*dto.GuardarecursoResponse, error) {
	g, err := uc.repo.GetByID(id)
	if err != nil || g == nil {
		return nil, err
	}
	return toGuardarecursoResponse(g), nil
}

// Create registra un guardarecurso en estado Activo.
//
// Nota: asignar un área ya desactivada no se valida aquí; el sistema original
// tampoco lo hace (la guardia referencial solo corre al desactivar áreas).
func (uc *GuardarecursoUseCase) Create(in dto.CreateGuardarecursoRequest) (*dto.GuardarecursoResponse, error) {
	now := time.Now()
	fechaIngreso := in.FechaIngreso
	if fechaIngreso.IsZero() {
		fechaIngreso = now
	}
	g := &entity.Guardarecurso{
		ID:             uuid.New().String(),
		Codigo:         in.Codigo,
		Nombre:         in.Nombre,
		Apellido:       in.Apellido,
		DPI:            in.DPI,
		Telefono:       in.Telefono,
		Email:          in.Email,
		AreaAsignadaID: in.AreaAsignadaID,
		Estado:         entity.EstadoActivo,
		FechaIngreso:   fechaIngreso,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(g); err != nil {
		return nil, err
	}
	return toGuardarecursoResponse(g), nil
}

// Update actualiza perfil, asignación de área y estado.
func (uc *GuardarecursoUseCase) Update(id string, in dto.UpdateGuardarecursoRequest) (*dto.GuardarecursoResponse, error) {
	g, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != "" {
		g.Nombre = in.Nombre
	}
	if in.Apellido != "" {
		g.Apellido = in.Apellido
	}
	if in.DPI != "" {
		g.DPI = in.DPI
	}
	if in.Telefono != "" {
		g.Telefono = in.Telefono
	}
	if in.Email != "" {
		g.Email = in.Email
	}
	// AreaAsignadaID sí admite vacío: des-asignar es una operación válida y
	// necesaria para poder desactivar áreas.
	g.AreaAsignadaID = in.AreaAsignadaID
	if in.Estado != "" {
		if in.Estado != entity.EstadoActivo && in.Estado != entity.EstadoSuspendido && in.Estado != entity.EstadoDesactivado {
			return nil, domain.ErrInvalidInput
		}
		g.Estado = in.Estado
	}
	g.UpdatedAt = time.Now()
	if err := uc.repo.Update(g); err != nil {
		return nil, err
	}
	return toGuardarecursoResponse(g), nil
}

func toGuardarecursoResponse(g *entity.Guardarecurso) *dto.GuardarecursoResponse {
	return &dto.GuardarecursoResponse{
		ID:             g.ID,
		Codigo:         g.Codigo,
		Nombre:         g.Nombre,
		Apellido:       g.Apellido,
		DPI:            g.DPI,
		Telefono:       g.Telefono,
		Email:          g.Email,
		AreaAsignadaID: g.AreaAsignadaID,
		Estado:         g.Estado,
		FechaIngreso:   g.FechaIngreso,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}
