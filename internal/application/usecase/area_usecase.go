package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/conap-gt/guardarecursos-api/internal/application/dto"
	"github.com/conap-gt/guardarecursos-api/internal/domain"
	"github.com/conap-gt/guardarecursos-api/internal/domain/entity"
	"github.com/conap-gt/guardarecursos-api/internal/domain/geo"
	"github.com/conap-gt/guardarecursos-api/internal/domain/repository"
)

// DepartamentoTodos valor del filtro que no restringe por departamento.
const DepartamentoTodos = "todos"

// AreaUseCase reglas de negocio de áreas protegidas.
type AreaUseCase struct {
	areaRepo   repository.AreaRepository
	guardaRepo repository.GuardarecursoRepository
}

// NewAreaUseCase construye el caso de uso.
func NewAreaUseCase(areaRepo repository.AreaRepository, guardaRepo repository.GuardarecursoRepository) *AreaUseCase {
	return &AreaUseCase{areaRepo: areaRepo, guardaRepo: guardaRepo}
}

// Filtrar lista áreas activas que coinciden con la búsqueda y el departamento.
// La búsqueda es subcadena insensible a mayúsculas y tildes sobre nombre,
// departamento o descripción (OR entre campos). Las áreas desactivadas nunca
// aparecen, sin importar los demás filtros; no es un valor por defecto sino
// una regla absoluta de esta consulta.
func (uc *AreaUseCase) Filtrar(busqueda, departamento string) ([]dto.AreaResponse, error) {
	areas, err := uc.areaRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AreaResponse, 0, len(areas))
	for _, a := range areas {
		if a.Estado != entity.EstadoActivo {
			continue
		}
		if departamento != "" && departamento != DepartamentoTodos && a.Departamento != departamento {
			continue
		}
		if !(contiene(a.Nombre, busqueda) || contiene(a.Departamento, busqueda) || contiene(a.Descripcion, busqueda)) {
			continue
		}
		out = append(out, *toAreaResponse(a))
	}
	return out, nil
}

// GetByID obtiene un área por ID, (nil, nil) si no existe.
func (uc *AreaUseCase) GetByID(id string) (*dto.AreaResponse, error) {
	a, err := uc.areaRepo.GetByID(id)
	if err != nil || a == nil {
		return nil, err
	}
	return toAreaResponse(a), nil
}

// Create registra un área nueva en estado Activo.
func (uc *AreaUseCase) Create(in dto.CreateAreaRequest) (*dto.AreaResponse, error) {
	now := time.Now()
	a := &entity.AreaProtegida{
		ID:           uuid.New().String(),
		Nombre:       in.Nombre,
		Departamento: in.Departamento,
		Descripcion:  in.Descripcion,
		Latitud:      in.Latitud,
		Longitud:     in.Longitud,
		Ecosistemas:  in.Ecosistemas,
		Extension:    in.Extension,
		Estado:       entity.EstadoActivo,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.areaRepo.Create(a); err != nil {
		return nil, err
	}
	return toAreaResponse(a), nil
}

// Update actualiza los datos del área. El estado se cambia solo por CambiarEstado.
func (uc *AreaUseCase) Update(id string, in dto.UpdateAreaRequest) (*dto.AreaResponse, error) {
	a, err := uc.areaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != "" {
		a.Nombre = in.Nombre
	}
	if in.Departamento != "" {
		a.Departamento = in.Departamento
	}
	if in.Descripcion != "" {
		a.Descripcion = in.Descripcion
	}
	if in.Latitud != 0 {
		a.Latitud = in.Latitud
	}
	if in.Longitud != 0 {
		a.Longitud = in.Longitud
	}
	if in.Ecosistemas != nil {
		a.Ecosistemas = in.Ecosistemas
	}
	if !in.Extension.IsZero() {
		a.Extension = in.Extension
	}
	a.UpdatedAt = time.Now()
	if err := uc.areaRepo.Update(a); err != nil {
		return nil, err
	}
	return toAreaResponse(a), nil
}

// ValidarDesactivacion verifica la guardia referencial: un área no puede
// pasar a Desactivado mientras algún guardarecurso la tenga como área
// asignada. El mensaje incluye el conteo exacto.
func (uc *AreaUseCase) ValidarDesactivacion(areaID string) (*dto.ValidacionDesactivacionResponse, error) {
	n, err := uc.guardaRepo.CountByArea(areaID)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return &dto.ValidacionDesactivacionResponse{
			IsValid:       false,
			AssignedCount: n,
			Message: fmt.Sprintf(
				"No se puede desactivar el área: %d guardarecurso(s) asignado(s). Reasigne antes de desactivar.", n),
		}, nil
	}
	return &dto.ValidacionDesactivacionResponse{IsValid: true, AssignedCount: 0}, nil
}

// CambiarEstado aplica la transición binaria Activo⇄Desactivado.
//
//   - Mismo estado que el actual: ErrSinCambio (señal explícita de "sin
//     cambio"; nunca un éxito silencioso).
//   - Desactivar corre primero la guardia referencial.
//   - Reactivar no tiene guardia simétrica: así se comporta el sistema
//     original y se conserva tal cual.
func (uc *AreaUseCase) CambiarEstado(id, nuevo string) (*dto.AreaResponse, error) {
	if nuevo != entity.EstadoActivo && nuevo != entity.EstadoDesactivado {
		return nil, domain.ErrInvalidInput
	}
	a, err := uc.areaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if a.Estado == nuevo {
		return nil, domain.ErrSinCambio
	}
	if nuevo == entity.EstadoDesactivado {
		val, err := uc.ValidarDesactivacion(id)
		if err != nil {
			return nil, err
		}
		if !val.IsValid {
			return nil, fmt.Errorf("%w: %s", domain.ErrAreaConAsignaciones, val.Message)
		}
	}
	a.Estado = nuevo
	a.UpdatedAt = time.Now()
	if err := uc.areaRepo.Update(a); err != nil {
		return nil, err
	}
	return toAreaResponse(a), nil
}

// Mapa proyecta las áreas activas al plano del mapa esquemático.
func (uc *AreaUseCase) Mapa() ([]dto.PuntoMapaResponse, error) {
	areas, err := uc.areaRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PuntoMapaResponse, 0, len(areas))
	for _, a := range areas {
		if a.Estado != entity.EstadoActivo {
			continue
		}
		p := geo.Proyectar(a.Latitud, a.Longitud)
		out = append(out, dto.PuntoMapaResponse{
			AreaID:              a.ID,
			Nombre:              a.Nombre,
			X:                   p.X,
			Y:                   p.Y,
			EcosistemaPrincipal: a.EcosistemaPrincipal(),
		})
	}
	return out, nil
}

func toAreaResponse(a *entity.AreaProtegida) *dto.AreaResponse {
	return &dto.AreaResponse{
		ID:                  a.ID,
		Nombre:              a.Nombre,
		Departamento:        a.Departamento,
		Descripcion:         a.Descripcion,
		Latitud:             a.Latitud,
		Longitud:            a.Longitud,
		Ecosistemas:         a.Ecosistemas,
		EcosistemaPrincipal: a.EcosistemaPrincipal(),
		Extension:           a.Extension,
		Estado:              a.Estado,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}
