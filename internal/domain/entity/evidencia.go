package entity

import "time"

// EvidenciaFotografica registro fotográfico georreferenciado de campo.
//
// ActividadID y GuardarecursoID son referencias opcionales que pueden quedar
// colgando; la resolución de relacionados las trata como mejor-esfuerzo.
type EvidenciaFotografica struct {
	ID              string
	Titulo          string
	Descripcion     string
	URL             string
	Latitud         float64
	Longitud        float64
	FechaCaptura    time.Time
	Clasificacion   string // flora, fauna, amenaza, infraestructura, paisaje
	ActividadID     string // opcional
	GuardarecursoID string // opcional
	CreatedAt       time.Time
}
