package dto

import "time"

// CreateEvidenciaRequest entrada para registrar evidencia fotográfica.
type CreateEvidenciaRequest struct {
	Titulo          string    `json:"titulo" validate:"required"`
	Descripcion     string    `json:"descripcion"`
	URL             string    `json:"url"`
	Latitud         float64   `json:"latitud"`
	Longitud        float64   `json:"longitud"`
	FechaCaptura    time.Time `json:"fecha_captura"`
	Clasificacion   string    `json:"clasificacion" validate:"required"`
	ActividadID     string    `json:"actividad_id"`
	GuardarecursoID string    `json:"guardarecurso_id"`
}

// EvidenciaResponse salida de un registro fotográfico.
type EvidenciaResponse struct {
	ID              string    `json:"id"`
	Titulo          string    `json:"titulo"`
	Descripcion     string    `json:"descripcion"`
	URL             string    `json:"url,omitempty"`
	Latitud         float64   `json:"latitud"`
	Longitud        float64   `json:"longitud"`
	FechaCaptura    time.Time `json:"fecha_captura"`
	Clasificacion   string    `json:"clasificacion"`
	ActividadID     string    `json:"actividad_id,omitempty"`
	GuardarecursoID string    `json:"guardarecurso_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// RelacionadosResponse resolución mejor-esfuerzo de las referencias de una
// evidencia. Las referencias rotas producen campos ausentes, nunca error.
type RelacionadosResponse struct {
	Guardarecurso *GuardarecursoResponse `json:"guardarecurso,omitempty"`
	Actividad     *ActividadResponse     `json:"actividad,omitempty"`
	Area          *AreaResponse          `json:"area,omitempty"`
}
