// Package reporte arma el reporte de cumplimiento por guardarecurso y
// orquesta su generación en PDF.
package reporte

import (
	"context"
	"fmt"
	"time"

	"github.com/conap-gt/guardarecursos-api/internal/application/dto"
	"github.com/conap-gt/guardarecursos-api/internal/domain"
	"github.com/conap-gt/guardarecursos-api/internal/domain/cumplimiento"
	"github.com/conap-gt/guardarecursos-api/internal/domain/repository"
	"github.com/conap-gt/guardarecursos-api/pkg/metrics"
)

// UseCase caso de uso del reporte de cumplimiento.
type UseCase struct {
	guardaRepo  repository.GuardarecursoRepository
	areaRepo    repository.AreaRepository
	metricaRepo repository.MetricaRepository
	generator   PDFGenerator
}

// NewUseCase construye el caso de uso inyectando sus dependencias.
func NewUseCase(
	guardaRepo repository.GuardarecursoRepository,
	areaRepo repository.AreaRepository,
	metricaRepo repository.MetricaRepository,
	generator PDFGenerator,
) *UseCase {
	return &UseCase{guardaRepo: guardaRepo, areaRepo: areaRepo, metricaRepo: metricaRepo, generator: generator}
}

// Generar produce el PDF del reporte: una sección por guardarecurso
// seleccionado, en el orden recibido.
//
// Retorna (pdfBytes, filename, nil) si todo sale bien. Cualquier fallo se
// devuelve como error sin escritura parcial: el documento existe completo o
// no existe.
func (uc *UseCase) Generar(ctx context.Context, in dto.ReporteCumplimientoRequest) (pdfBytes []byte, filename string, err error) {
	if len(in.GuardarecursoIDs) == 0 {
		return nil, "", fmt.Errorf("%w: debe seleccionar al menos un guardarecurso", domain.ErrInvalidInput)
	}

	secciones := make([]Seccion, 0, len(in.GuardarecursoIDs))
	for _, id := range in.GuardarecursoIDs {
		g, err := uc.guardaRepo.GetByID(id)
		if err != nil {
			return nil, "", fmt.Errorf("reporte: obtener guardarecurso %s: %w", id, err)
		}
		if g == nil {
			return nil, "", fmt.Errorf("%w: guardarecurso %s", domain.ErrNotFound, id)
		}

		areaNombre := "Sin área asignada"
		if g.AreaAsignadaID != "" {
			// Mejor esfuerzo: una referencia de área rota no impide el reporte.
			if area, aErr := uc.areaRepo.GetByID(g.AreaAsignadaID); aErr == nil && area != nil {
				areaNombre = area.Nombre
			}
		}

		filas, promedio, err := uc.filasDelPeriodo(id, in.Periodo)
		if err != nil {
			return nil, "", err
		}
		secciones = append(secciones, Seccion{
			GuardarecursoNombre: g.NombreCompleto(),
			Codigo:              g.Codigo,
			AreaNombre:          areaNombre,
			Promedio:            promedio,
			Metricas:            filas,
		})
	}

	generadoEn := time.Now()
	pdfBytes, err = uc.generator.GenerarReporteCumplimiento(ctx, in.Periodo, generadoEn, secciones)
	if err != nil {
		metrics.ReportsGenerated.WithLabelValues("error").Inc()
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}
	metrics.ReportsGenerated.WithLabelValues("exitoso").Inc()

	filename = fmt.Sprintf("Reporte_Cumplimiento_%s_%s.pdf", in.Periodo, generadoEn.Format("20060102_150405"))
	return pdfBytes, filename, nil
}

// filasDelPeriodo arma las filas de métricas del guardarecurso para el
// período y su promedio simple (0 con el conjunto vacío).
func (uc *UseCase) filasDelPeriodo(guardarecursoID, periodo string) ([]FilaMetrica, float64, error) {
	todas, err := uc.metricaRepo.List()
	if err != nil {
		return nil, 0, fmt.Errorf("reporte: listar métricas: %w", err)
	}
	filas := make([]FilaMetrica, 0)
	suma := 0.0
	for _, m := range todas {
		if m.GuardarecursoID != guardarecursoID || m.Periodicidad != periodo {
			continue
		}
		pct := cumplimiento.Porcentaje(m.Actual, m.Meta)
		filas = append(filas, FilaMetrica{
			Nombre:     m.Nombre,
			Meta:       m.Meta,
			Actual:     m.Actual,
			Unidad:     m.Unidad,
			Porcentaje: pct,
			Nivel:      cumplimiento.Nivel(pct),
		})
		suma += pct
	}
	promedio := 0.0
	if len(filas) > 0 {
		promedio = suma / float64(len(filas))
	}
	return filas, promedio, nil
}
