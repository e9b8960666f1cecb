package dto

// ReporteCumplimientoRequest entrada del generador de reportes: secuencia
// ordenada y no vacía de guardarecursos más el período a reportar.
type ReporteCumplimientoRequest struct {
	GuardarecursoIDs []string `json:"guardarecurso_ids" validate:"required,min=1"`
	Periodo          string   `json:"periodo" validate:"required,oneof=Diario Semanal Mensual Trimestral Anual"`
}
